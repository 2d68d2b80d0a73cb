package sqlinline

const QInsertEvent = `--sql 49560b82-81fb-4d10-a5d1-9fc15757493c
insert into events(id, name, description, location, starts_at, capacity, created_at)
values ($1::uuid, $2::text, $3::text, $4::text, $5::timestamptz, $6::int, now());
`

const QSelectEventByID = `--sql 932876ef-b9ba-4bd4-b605-07558a225441
select id, name, description, location, starts_at, capacity, created_at
from events
where id = $1::uuid;
`

const QListEvents = `--sql dc065976-469e-439a-bf5d-580dccbeff68
select id, name, description, location, starts_at, capacity, created_at
from events
order by starts_at asc;
`
