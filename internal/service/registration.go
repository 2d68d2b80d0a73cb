package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"communityserver/internal/domain"
)

// RegistrationService enforces the create → transition → complete lifecycle
// uniformly across every registration variant.
type RegistrationService struct {
	repo   domain.RegistrationRepository
	events domain.EventRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewRegistrationService constructs a RegistrationService. The event
// repository may be nil; event registrations then skip denormalization.
func NewRegistrationService(repo domain.RegistrationRepository, events domain.EventRepository, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, events: events, logger: logger, now: time.Now}
}

// CreateRegistrationInput carries the common fields plus the typed variant
// payload decoded by the HTTP layer.
type CreateRegistrationInput struct {
	UserID          *string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	City            string
	State           string
	Zip             string
	Type            string
	Notes           string
	SpecialRequests string
	Details         domain.RegistrationDetails
}

// Create validates the base contract and the variant's rules, assigns the
// pending status with its initial history entry, and persists the record.
func (s *RegistrationService) Create(ctx context.Context, in CreateRegistrationInput) (*domain.Registration, error) {
	regType, err := domain.ParseRegistrationType(in.Type)
	if err != nil {
		return nil, err
	}

	fieldErrs := validateBase(&in)
	variantErrs, known := ValidateVariant(regType, in.Details)
	if !known {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, in.Type)
	}
	fieldErrs = append(fieldErrs, variantErrs...)
	if len(fieldErrs) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrs}
	}

	// Event registrations denormalize the event name and date so the record
	// stays readable after the catalogue entry changes.
	if details, ok := in.Details.(domain.EventDetails); ok && s.events != nil {
		event, err := s.events.GetByID(ctx, details.EventID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, &domain.ValidationError{Fields: []domain.FieldError{{Field: "eventId", Message: "unknown event"}}}
			}
			return nil, fmt.Errorf("resolve event: %w", err)
		}
		details.EventName = event.Name
		starts := event.StartsAt
		details.EventDate = &starts
		in.Details = details
	}

	now := s.now().UTC()
	reg := &domain.Registration{
		ID:              uuid.NewString(),
		UserID:          in.UserID,
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		Email:           strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:           strings.TrimSpace(in.Phone),
		Address:         in.Address,
		City:            in.City,
		State:           in.State,
		Zip:             in.Zip,
		Type:            regType,
		Notes:           in.Notes,
		SpecialRequests: in.SpecialRequests,
		Details:         in.Details,
		CreatedAt:       now,
	}
	reg.ApplyStatus(domain.StatusPending, now, "")

	if err := s.repo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}
	s.logger.Info().
		Str("registration_id", reg.ID).
		Str("type", string(reg.Type)).
		Msg("registration created")
	return reg, nil
}

// Get returns a registration by id.
func (s *RegistrationService) Get(ctx context.Context, id string) (*domain.Registration, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List returns registrations narrowed by the filter.
func (s *RegistrationService) List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	if filter.Limit <= 0 || filter.Limit > 200 {
		filter.Limit = 50
	}
	return s.repo.List(ctx, filter)
}

// TransitionStatus overwrites the status and appends a history entry in one
// atomic write. Re-applying the current status is not an error; the append
// still happens, preserving the audit trail of repeated confirmations.
func (s *RegistrationService) TransitionStatus(ctx context.Context, id, rawStatus, note string) (*domain.Registration, error) {
	status, err := domain.ParseRegistrationStatus(rawStatus)
	if err != nil {
		return nil, err
	}
	entry := domain.NewStatusEntry(status, s.now(), note)
	reg, err := s.repo.AppendStatus(ctx, id, status, entry)
	if err != nil {
		return nil, fmt.Errorf("transition registration %s: %w", id, err)
	}
	s.logger.Info().
		Str("registration_id", id).
		Str("status", string(status)).
		Msg("registration status changed")
	return reg, nil
}

// Cancel moves the registration to cancelled. Only pending and approved
// records may be cancelled; the guard is applied in the same statement as
// the write so a racing transition cannot slip a cancel through.
func (s *RegistrationService) Cancel(ctx context.Context, id, note string) (*domain.Registration, error) {
	if strings.TrimSpace(note) == "" {
		note = "Cancelled by requester"
	}
	entry := domain.NewStatusEntry(domain.StatusCancelled, s.now(), note)
	allowed := []domain.RegistrationStatus{domain.StatusPending, domain.StatusApproved}
	reg, err := s.repo.AppendStatusWhere(ctx, id, domain.StatusCancelled, entry, allowed)
	if err != nil {
		return nil, fmt.Errorf("cancel registration %s: %w", id, err)
	}
	s.logger.Info().Str("registration_id", id).Msg("registration cancelled")
	return reg, nil
}
