package sqlinline

const QRegistrationCountsByType = `--sql 568ec1d9-196b-4972-a484-78f527f831e3
select registration_type, count(*)
from registrations
group by registration_type;
`

const QRegistrationCountsByStatus = `--sql 6d570a41-5f4e-4be7-930b-22d2a18b7f8f
select status, count(*)
from registrations
group by status;
`

const QDonationTotalsByFund = `--sql 1171f277-6a14-48e1-91bd-9fbbd50d6f21
select fund, count(*), coalesce(sum(amount_int), 0)
from donations
where status = 'completed'
group by fund;
`
