package repo

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"communityserver/internal/domain"
)

type fakeRow struct {
	scan func(dest ...any) error
}

func (f fakeRow) Scan(dest ...any) error { return f.scan(dest...) }

// fakeSQL replays queued rows for QueryRow calls and records the queries it
// received.
type fakeSQL struct {
	rows    []fakeRow
	queries []string
}

func (f *fakeSQL) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	f.queries = append(f.queries, query)
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	f.queries = append(f.queries, query)
	if len(f.rows) == 0 {
		return fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}
	}
	row := f.rows[0]
	f.rows = f.rows[1:]
	return row
}

func (f *fakeSQL) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, query)
	return nil, errors.New("not implemented")
}

func idRow(id string) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		*(dest[0].(*string)) = id
		return nil
	}}
}

func noRow() fakeRow {
	return fakeRow{scan: func(...any) error { return pgx.ErrNoRows }}
}

func donationRow(d domain.Donation) fakeRow {
	return fakeRow{scan: func(dest ...any) error {
		payment, _ := json.Marshal(d.Payment)
		*(dest[0].(*string)) = d.ID
		*(dest[1].(*string)) = d.DonorID
		*(dest[2].(*string)) = d.FirstName
		*(dest[3].(*string)) = d.LastName
		*(dest[4].(*string)) = d.Email
		*(dest[5].(*bool)) = d.Anonymous
		*(dest[6].(*int64)) = d.AmountMinor
		*(dest[7].(*string)) = d.Currency
		*(dest[8].(*string)) = string(d.Fund)
		*(dest[9].(*string)) = d.Category
		*(dest[10].(*string)) = d.Description
		*(dest[11].(*string)) = d.Receipt
		*(dest[12].(*string)) = string(d.Status)
		*(dest[13].(*[]byte)) = payment
		*(dest[14].(*string)) = d.Country
		*(dest[15].(*time.Time)) = d.CreatedAt
		*(dest[16].(*time.Time)) = d.UpdatedAt
		return nil
	}}
}

func sampleDonation() domain.Donation {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.Donation{
		ID:          "don-1",
		DonorID:     "u1",
		FirstName:   "Fatima",
		LastName:    "Hassan",
		Email:       "donor@example.org",
		AmountMinor: 5000,
		Currency:    "USD",
		Fund:        domain.FundZakat,
		Category:    "zakat",
		Description: "Donation to the Zakat Fund",
		Receipt:     "DON-1748779200000",
		Status:      domain.DonationPending,
		Payment:     domain.GatewayPayment{OrderID: "order_1", Status: "pending"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestDonationCreateInserted(t *testing.T) {
	sql := &fakeSQL{rows: []fakeRow{idRow("don-1")}}
	r := NewDonationRepository(sql)

	d := sampleDonation()
	stored, inserted, err := r.Create(context.Background(), &d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !inserted {
		t.Fatal("expected inserted=true")
	}
	if stored.ID != "don-1" {
		t.Fatalf("id mismatch: %q", stored.ID)
	}
	if len(sql.queries) != 1 {
		t.Fatalf("expected one statement, got %d", len(sql.queries))
	}
}

func TestDonationCreateConflictReturnsExisting(t *testing.T) {
	existing := sampleDonation()
	existing.Receipt = "DON-original"
	sql := &fakeSQL{rows: []fakeRow{noRow(), donationRow(existing)}}
	r := NewDonationRepository(sql)

	d := sampleDonation()
	stored, inserted, err := r.Create(context.Background(), &d)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inserted {
		t.Fatal("conflict reported as insert")
	}
	if stored.Receipt != "DON-original" {
		t.Fatalf("expected the stored row back, got %+v", stored)
	}
	if stored.Payment.OrderID != "order_1" {
		t.Fatalf("payment not decoded: %+v", stored.Payment)
	}
}

func TestDonationGetByIDNotFound(t *testing.T) {
	sql := &fakeSQL{rows: []fakeRow{noRow()}}
	r := NewDonationRepository(sql)

	if _, err := r.GetByID(context.Background(), "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDonationFinalizeGuardAlreadyFinalized(t *testing.T) {
	// Conditional update matches no row; the follow-up read finds the row,
	// so the guard rejected it.
	stored := sampleDonation()
	stored.Status = domain.DonationCompleted
	sql := &fakeSQL{rows: []fakeRow{noRow(), donationRow(stored)}}
	r := NewDonationRepository(sql)

	d := sampleDonation()
	d.Status = domain.DonationCompleted
	if err := r.Finalize(context.Background(), &d); !errors.Is(err, domain.ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}
}

func TestDonationFinalizeRefundGuard(t *testing.T) {
	stored := sampleDonation()
	sql := &fakeSQL{rows: []fakeRow{noRow(), donationRow(stored)}}
	r := NewDonationRepository(sql)

	d := sampleDonation()
	d.Status = domain.DonationRefunded
	if err := r.Finalize(context.Background(), &d); !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestDonationFinalizeMissingRow(t *testing.T) {
	sql := &fakeSQL{rows: []fakeRow{noRow(), noRow()}}
	r := NewDonationRepository(sql)

	d := sampleDonation()
	d.Status = domain.DonationCompleted
	if err := r.Finalize(context.Background(), &d); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
