package sqlinline

const QSelectUserByID = `--sql 800ad624-11f7-401b-8ee8-0c76b7e55118
select id, email, name, phone, locale, role, created_at, updated_at
from users
where id = $1::uuid;
`

const QSelectUserByEmail = `--sql 32cd1800-398e-4a1c-8463-590ae02e5d66
select id, email, name, phone, locale, role, created_at, updated_at
from users
where lower(email) = lower($1::text);
`
