package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"communityserver/internal/domain"
)

// EventService manages the community event catalogue.
type EventService struct {
	repo   domain.EventRepository
	logger zerolog.Logger
	now    func() time.Time
}

// NewEventService constructs an EventService.
func NewEventService(repo domain.EventRepository, logger zerolog.Logger) *EventService {
	return &EventService{repo: repo, logger: logger, now: time.Now}
}

// CreateEventInput is the admin create payload.
type CreateEventInput struct {
	Name        string
	Description string
	Location    string
	StartsAt    time.Time
	Capacity    int
}

// Create validates and persists a new catalogue entry.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*domain.Event, error) {
	var fieldErrs []domain.FieldError
	if strings.TrimSpace(in.Name) == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "name", Message: "required"})
	}
	if in.StartsAt.IsZero() {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "startsAt", Message: "required"})
	}
	if in.Capacity < 0 {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "capacity", Message: "cannot be negative"})
	}
	if len(fieldErrs) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrs}
	}

	event := &domain.Event{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Location:    in.Location,
		StartsAt:    in.StartsAt.UTC(),
		Capacity:    in.Capacity,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	s.logger.Info().Str("event_id", event.ID).Str("name", event.Name).Msg("event created")
	return event, nil
}

// Get returns one event by id.
func (s *EventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// List returns the full catalogue ordered by start time.
func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}
