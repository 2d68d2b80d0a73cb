package sqlinline

const QInsertDonationIdempotent = `--sql 9b79c57c-3615-48a2-9d85-3426d5b3f7eb
insert into donations(
    id, donor_id, first_name, last_name, email, anonymous,
    amount_int, currency, fund, category, description, receipt,
    status, payment, country, created_at, updated_at)
values (
    $1::text, $2::uuid, $3::text, $4::text, $5::text, $6::boolean,
    $7::bigint, $8::text, $9::text, $10::text, $11::text, $12::text,
    $13::text, $14::jsonb, $15::text, now(), now())
on conflict (id) do nothing
returning id;
`

const QSelectDonationByID = `--sql 7a08e4f6-cb8a-42c4-bd7f-291d6e913edc
select id, donor_id, first_name, last_name, email, anonymous,
       amount_int, currency, fund, category, description, receipt,
       status, payment, country, created_at, updated_at
from donations
where id = $1::text;
`

const QFinalizeDonation = `--sql e885fbf6-ffea-44dd-93df-4d191434fa63
update donations
set status = $2::text,
    payment = $3::jsonb,
    updated_at = now()
where id = $1::text and status in ('pending', 'processing')
returning id;
`

const QRefundDonation = `--sql 9772ec07-f603-457f-8c85-8db1a3045c45
update donations
set status = $2::text,
    payment = $3::jsonb,
    updated_at = now()
where id = $1::text and status = 'completed'
returning id;
`

const QListDonations = `--sql 9c156a6f-c2e6-404b-9c99-043d9e1dcd94
select id, donor_id, first_name, last_name, email, anonymous,
       amount_int, currency, fund, category, description, receipt,
       status, payment, country, created_at, updated_at
from donations
order by created_at desc
limit $1::int;
`
