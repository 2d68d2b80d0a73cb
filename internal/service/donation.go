package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"communityserver/internal/domain"
	"communityserver/internal/gateway"
)

// DonationService orchestrates the two-phase donation write: a pending
// record plus gateway order on initiate, a verified finalization on the
// gateway callback.
type DonationService struct {
	donations domain.DonationRepository
	users     domain.UserRepository
	orders    gateway.OrderCreator
	keySecret string
	currency  string
	logger    zerolog.Logger
	now       func() time.Time
}

// NewDonationService constructs a DonationService.
func NewDonationService(
	donations domain.DonationRepository,
	users domain.UserRepository,
	orders gateway.OrderCreator,
	keySecret string,
	currency string,
	logger zerolog.Logger,
) *DonationService {
	return &DonationService{
		donations: donations,
		users:     users,
		orders:    orders,
		keySecret: keySecret,
		currency:  currency,
		logger:    logger,
		now:       time.Now,
	}
}

// InitiateDonationInput is the initiate request. ID is the caller-supplied
// idempotency key; retrying with the same ID returns the stored record.
type InitiateDonationInput struct {
	ID          string
	DonorID     string
	FirstName   string
	LastName    string
	Email       string
	Anonymous   bool
	AmountMinor int64
	Currency    string
	Fund        string
	Category    string
	Description string
	Country     string
}

// InitiateResult pairs the stored donation with the gateway order the
// client completes checkout against.
type InitiateResult struct {
	Donation *domain.Donation
	OrderID  string
	// Replayed reports that the idempotency key matched an existing record
	// and no new row or gateway order was created.
	Replayed bool
}

// Initiate validates the request, resolves the donor, creates the gateway
// order, and persists a pending donation keyed on the supplied id.
func (s *DonationService) Initiate(ctx context.Context, in InitiateDonationInput) (*InitiateResult, error) {
	if in.AmountMinor <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", domain.ErrInvalidAmount, in.AmountMinor)
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "id", Message: "required"}}}
	}
	if strings.TrimSpace(in.DonorID) == "" {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "donorId", Message: "required"}}}
	}

	donor, err := s.users.GetByID(ctx, in.DonorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDonor, in.DonorID)
		}
		return nil, fmt.Errorf("resolve donor: %w", err)
	}

	fund, err := domain.ParseFundCategory(in.Fund)
	if err != nil {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "program", Message: err.Error()}}}
	}

	// Idempotent replay: an existing row under this key short-circuits
	// before any gateway call.
	if existing, err := s.donations.GetByID(ctx, in.ID); err == nil {
		return &InitiateResult{Donation: existing, OrderID: existing.Payment.OrderID, Replayed: true}, nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lookup donation: %w", err)
	}

	now := s.now().UTC()
	currency := in.Currency
	if currency == "" {
		currency = s.currency
	}
	donation := &domain.Donation{
		ID:          in.ID,
		DonorID:     donor.ID,
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Email:       donor.Email,
		Anonymous:   in.Anonymous,
		AmountMinor: in.AmountMinor,
		Currency:    currency,
		Fund:        fund,
		Category:    domain.DeriveCategory(in.Category, fund),
		Description: domain.DeriveDescription(in.Description, fund),
		Status:      domain.DonationPending,
		Country:     in.Country,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	donation.MaskAnonymous()
	donation.EnsureReceipt(now)

	order, err := s.orders.CreateOrder(ctx, donation.AmountMinor, donation.Currency, donation.Receipt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayFailure, err)
	}
	donation.Payment = domain.GatewayPayment{OrderID: order.ID, Status: string(domain.DonationPending)}

	stored, inserted, err := s.donations.Create(ctx, donation)
	if err != nil {
		return nil, fmt.Errorf("persist donation: %w", err)
	}
	if !inserted {
		// A concurrent initiate with the same key won the insert race.
		return &InitiateResult{Donation: stored, OrderID: stored.Payment.OrderID, Replayed: true}, nil
	}

	s.logger.Info().
		Str("donation_id", stored.ID).
		Str("fund", string(stored.Fund)).
		Int64("amount_minor", stored.AmountMinor).
		Msg("donation initiated")
	return &InitiateResult{Donation: stored, OrderID: order.ID}, nil
}

// Confirm finalizes a donation on the gateway callback, verifying the
// signature and storing the correlation identifiers verbatim.
func (s *DonationService) Confirm(ctx context.Context, id, orderID, paymentID, signature string) (*domain.Donation, error) {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load donation %s: %w", id, err)
	}

	if !gateway.VerifySignature(orderID, paymentID, signature, s.keySecret) {
		return nil, fmt.Errorf("%w: signature mismatch for donation %s", domain.ErrInvalidSignature, id)
	}

	if err := donation.Complete(orderID, paymentID, signature, s.now()); err != nil {
		return nil, err
	}
	if err := s.donations.Finalize(ctx, donation); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("donation_id", donation.ID).
		Str("order_id", orderID).
		Msg("donation completed")
	return donation, nil
}

// Fail marks a pending or processing donation as failed, for gateway
// callbacks reporting an unsuccessful checkout.
func (s *DonationService) Fail(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load donation %s: %w", id, err)
	}
	if err := donation.Fail(s.now()); err != nil {
		return nil, err
	}
	if err := s.donations.Finalize(ctx, donation); err != nil {
		return nil, err
	}
	s.logger.Info().Str("donation_id", donation.ID).Msg("donation failed")
	return donation, nil
}

// Refund moves a completed donation to refunded. Admin-triggered only.
func (s *DonationService) Refund(ctx context.Context, id string) (*domain.Donation, error) {
	donation, err := s.donations.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load donation %s: %w", id, err)
	}
	if err := donation.Refund(s.now()); err != nil {
		return nil, err
	}
	if err := s.donations.Finalize(ctx, donation); err != nil {
		return nil, err
	}
	s.logger.Info().Str("donation_id", donation.ID).Msg("donation refunded")
	return donation, nil
}

// ListRecent returns the latest donations for the public feed. Anonymous
// rows already carry the masked placeholder names.
func (s *DonationService) ListRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.donations.ListRecent(ctx, limit)
}
