package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"communityserver/internal/domain"
	"communityserver/internal/infra"
	"communityserver/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sqlExec infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sqlExec}
}

// Create inserts the donation unless its id already exists. The second
// return value reports whether an insert actually happened; on conflict
// the previously stored row is returned instead.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) (*domain.Donation, bool, error) {
	payment, err := json.Marshal(donation.Payment)
	if err != nil {
		return nil, false, fmt.Errorf("marshal payment: %w", err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonationIdempotent,
		donation.ID, donation.DonorID, donation.FirstName, donation.LastName,
		donation.Email, donation.Anonymous,
		donation.AmountMinor, donation.Currency, string(donation.Fund),
		donation.Category, donation.Description, donation.Receipt,
		string(donation.Status), payment, donation.Country)

	var insertedID string
	if err := row.Scan(&insertedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			existing, getErr := r.GetByID(ctx, donation.ID)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return donation, true, nil
}

// GetByID returns one donation or domain.ErrNotFound.
func (r *DonationRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Donation, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectDonationByID, id)
	donation, err := scanDonation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return donation, nil
}

// Finalize persists the donation's current status and payment fields,
// guarded so a finalized row is never overwritten. The guard depends on
// the target state: completion and failure only apply to pending or
// processing rows, a refund only to a completed row.
func (r *DonationRepositoryPG) Finalize(ctx context.Context, donation *domain.Donation) error {
	payment, err := json.Marshal(donation.Payment)
	if err != nil {
		return fmt.Errorf("marshal payment: %w", err)
	}

	query := sqlinline.QFinalizeDonation
	guardErr := domain.ErrAlreadyFinalized
	if donation.Status == domain.DonationRefunded {
		query = sqlinline.QRefundDonation
		guardErr = domain.ErrIllegalTransition
	}

	row := r.sql.QueryRow(ctx, query, donation.ID, string(donation.Status), payment)
	var id string
	if err := row.Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if _, getErr := r.GetByID(ctx, donation.ID); getErr != nil {
				return getErr
			}
			return fmt.Errorf("%w: donation %s", guardErr, donation.ID)
		}
		return err
	}
	return nil
}

// ListRecent returns recent donations limited by the input value.
func (r *DonationRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonations, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *donation)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var d domain.Donation
	var fund, status string
	var paymentRaw []byte
	if err := row.Scan(
		&d.ID, &d.DonorID, &d.FirstName, &d.LastName, &d.Email, &d.Anonymous,
		&d.AmountMinor, &d.Currency, &fund, &d.Category, &d.Description, &d.Receipt,
		&status, &paymentRaw, &d.Country, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Fund = domain.FundCategory(fund)
	d.Status = domain.DonationStatus(status)
	if len(paymentRaw) > 0 {
		if err := json.Unmarshal(paymentRaw, &d.Payment); err != nil {
			return nil, fmt.Errorf("decode payment: %w", err)
		}
	}
	return &d, nil
}
