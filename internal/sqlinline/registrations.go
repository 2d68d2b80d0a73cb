package sqlinline

const QInsertRegistration = `--sql a85e07ab-e2d9-4f68-935f-34903cf7cc1c
insert into registrations(
    id, user_id, first_name, last_name, email, phone,
    address, city, state, zip,
    registration_type, status, status_history,
    notes, special_requests, details, created_at, updated_at)
values (
    $1::uuid, nullif($2::text, '')::uuid, $3::text, $4::text, $5::text, $6::text,
    $7::text, $8::text, $9::text, $10::text,
    $11::text, $12::text, $13::jsonb,
    $14::text, $15::text, $16::jsonb, $17::timestamptz, $17::timestamptz);
`

const QSelectRegistrationByID = `--sql f9edb3c9-e045-44dd-978b-601fa3cfe90f
select id, user_id, first_name, last_name, email, phone,
       address, city, state, zip,
       registration_type, status, status_history,
       notes, special_requests, details, created_at, updated_at
from registrations
where id = $1::uuid;
`

const QAppendRegistrationStatus = `--sql 831363b0-8637-464d-b4ca-7b02244616c7
update registrations
set status = $2::text,
    status_history = status_history || $3::jsonb,
    updated_at = now()
where id = $1::uuid
returning id, user_id, first_name, last_name, email, phone,
          address, city, state, zip,
          registration_type, status, status_history,
          notes, special_requests, details, created_at, updated_at;
`

const QAppendRegistrationStatusWhere = `--sql 26b6e308-dce5-413b-b015-66309741c77b
update registrations
set status = $2::text,
    status_history = status_history || $3::jsonb,
    updated_at = now()
where id = $1::uuid and status = any($4::text[])
returning id, user_id, first_name, last_name, email, phone,
          address, city, state, zip,
          registration_type, status, status_history,
          notes, special_requests, details, created_at, updated_at;
`

const QListRegistrations = `--sql c2f7250d-00b8-4ecc-8bf3-f553175244d3
select id, user_id, first_name, last_name, email, phone,
       address, city, state, zip,
       registration_type, status, status_history,
       notes, special_requests, details, created_at, updated_at
from registrations
where ($1::text = '' or registration_type = $1::text)
  and ($2::text = '' or status = $2::text)
  and ($3::text = '' or lower(email) = lower($3::text))
order by created_at desc
limit $4::int;
`
