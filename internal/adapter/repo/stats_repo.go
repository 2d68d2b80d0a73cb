package repo

import (
	"context"

	"communityserver/internal/domain"
	"communityserver/internal/infra"
	"communityserver/internal/sqlinline"
)

// StatsRepositoryPG implements domain.StatsRepository with aggregate
// queries over the registrations and donations tables.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStatsRepository creates a new stats repo.
func NewStatsRepository(sqlExec infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sqlExec}
}

// Summary returns the aggregate snapshot for the admin dashboard.
func (r *StatsRepositoryPG) Summary(ctx context.Context) (*domain.StatsSummary, error) {
	summary := &domain.StatsSummary{
		RegistrationsByType:   map[domain.RegistrationType]int{},
		RegistrationsByStatus: map[domain.RegistrationStatus]int{},
		DonationTotalsByFund:  map[domain.FundCategory]int64{},
	}

	rows, err := r.sql.Query(ctx, sqlinline.QRegistrationCountsByType)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var regType string
		var count int
		if err := rows.Scan(&regType, &count); err != nil {
			rows.Close()
			return nil, err
		}
		summary.RegistrationsByType[domain.RegistrationType(regType)] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.sql.Query(ctx, sqlinline.QRegistrationCountsByStatus)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			rows.Close()
			return nil, err
		}
		summary.RegistrationsByStatus[domain.RegistrationStatus(status)] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.sql.Query(ctx, sqlinline.QDonationTotalsByFund)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var fund string
		var count int
		var total int64
		if err := rows.Scan(&fund, &count, &total); err != nil {
			rows.Close()
			return nil, err
		}
		summary.DonationTotalsByFund[domain.FundCategory(fund)] = total
		summary.DonationCount += count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
