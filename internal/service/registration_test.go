package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"communityserver/internal/domain"
)

func newRegistrationService(repo domain.RegistrationRepository, events domain.EventRepository) *RegistrationService {
	svc := NewRegistrationService(repo, events, zerolog.Nop())
	svc.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func baseInput(regType string, details domain.RegistrationDetails) CreateRegistrationInput {
	return CreateRegistrationInput{
		FirstName: "Aisha",
		LastName:  "Rahman",
		Email:     "Aisha@Example.org",
		Phone:     "555-0100",
		Type:      regType,
		Details:   details,
	}
}

func TestCreateEveryVariant(t *testing.T) {
	events := &fakeEventRepo{events: map[string]*domain.Event{
		"ev1": {ID: "ev1", Name: "Eid Dinner", StartsAt: time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC)},
	}}
	svc := newRegistrationService(newFakeRegistrationRepo(), events)

	cases := []struct {
		regType string
		details domain.RegistrationDetails
	}{
		{"general", domain.GeneralDetails{MembershipTier: "family"}},
		{"program", domain.ProgramDetails{ProgramID: "p1", EmergencyContact: domain.EmergencyContact{Name: "B", Phone: "1"}}},
		{"event", domain.EventDetails{EventID: "ev1", TotalAttendees: 3}},
		{"service", domain.ServiceDetails{ServiceType: domain.ServiceFood, RequestTitle: "Groceries", Description: "weekly box"}},
		{"volunteer", domain.VolunteerDetails{VolunteerType: "weekend", EmergencyContact: domain.EmergencyContact{Name: "B", Phone: "1"}}},
	}
	for _, tc := range cases {
		reg, err := svc.Create(context.Background(), baseInput(tc.regType, tc.details))
		if err != nil {
			t.Fatalf("create %s: %v", tc.regType, err)
		}
		if reg.Status != domain.StatusPending {
			t.Fatalf("create %s: expected pending, got %q", tc.regType, reg.Status)
		}
		if len(reg.History) != 1 {
			t.Fatalf("create %s: expected one history entry, got %d", tc.regType, len(reg.History))
		}
		if reg.Email != "aisha@example.org" {
			t.Fatalf("create %s: email not normalized: %q", tc.regType, reg.Email)
		}
	}
}

func TestCreateDenormalizesEvent(t *testing.T) {
	starts := time.Date(2025, 7, 4, 18, 0, 0, 0, time.UTC)
	events := &fakeEventRepo{events: map[string]*domain.Event{
		"ev1": {ID: "ev1", Name: "Eid Dinner", StartsAt: starts},
	}}
	svc := newRegistrationService(newFakeRegistrationRepo(), events)

	reg, err := svc.Create(context.Background(), baseInput("event", domain.EventDetails{EventID: "ev1", TotalAttendees: 2}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	details := reg.Details.(domain.EventDetails)
	if details.EventName != "Eid Dinner" {
		t.Fatalf("event name not copied: %q", details.EventName)
	}
	if details.EventDate == nil || !details.EventDate.Equal(starts) {
		t.Fatalf("event date not copied: %v", details.EventDate)
	}
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := newRegistrationService(newFakeRegistrationRepo(), nil)
	_, err := svc.Create(context.Background(), baseInput("membership", domain.GeneralDetails{MembershipTier: "x"}))
	if !errors.Is(err, domain.ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestCreateCollectsFieldErrors(t *testing.T) {
	svc := newRegistrationService(newFakeRegistrationRepo(), nil)
	in := CreateRegistrationInput{
		Email:   "not-an-email",
		Type:    "volunteer",
		Details: domain.VolunteerDetails{},
	}
	_, err := svc.Create(context.Background(), in)

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"firstName", "lastName", "email", "phone", "volunteerType", "emergencyContact.name", "emergencyContact.phone"} {
		if !verr.Has(field) {
			t.Fatalf("missing field error %q in %v", field, verr.Fields)
		}
	}
}

func TestTransitionAppendsHistory(t *testing.T) {
	repo := newFakeRegistrationRepo()
	svc := newRegistrationService(repo, nil)

	created, err := svc.Create(context.Background(), baseInput("general", domain.GeneralDetails{MembershipTier: "single"}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	transitions := []string{"approved", "approved", "completed"}
	for _, status := range transitions {
		if _, err := svc.TransitionStatus(context.Background(), created.ID, status, ""); err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
	}

	reg, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if want := 1 + len(transitions); len(reg.History) != want {
		t.Fatalf("expected %d history entries, got %d", want, len(reg.History))
	}
	if reg.Status != domain.StatusCompleted {
		t.Fatalf("status mismatch: %q", reg.Status)
	}
}

func TestTransitionRejectsUnknownStatus(t *testing.T) {
	svc := newRegistrationService(newFakeRegistrationRepo(), nil)
	if _, err := svc.TransitionStatus(context.Background(), "r1", "archived", ""); !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition, got %v", err)
	}
}

func TestCancelGuardsTerminalStates(t *testing.T) {
	repo := newFakeRegistrationRepo()
	svc := newRegistrationService(repo, nil)

	created, err := svc.Create(context.Background(), baseInput("general", domain.GeneralDetails{MembershipTier: "single"}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.TransitionStatus(context.Background(), created.ID, "completed", ""); err != nil {
		t.Fatalf("transition: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), created.ID, ""); !errors.Is(err, domain.ErrIllegalTransition) {
		t.Fatalf("expected ErrIllegalTransition cancelling a completed registration, got %v", err)
	}

	pending, err := svc.Create(context.Background(), baseInput("general", domain.GeneralDetails{MembershipTier: "single"}))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	cancelled, err := svc.Cancel(context.Background(), pending.ID, "")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.StatusCancelled {
		t.Fatalf("status mismatch: %q", cancelled.Status)
	}
	if note := cancelled.History[len(cancelled.History)-1].Note; note != "Cancelled by requester" {
		t.Fatalf("unexpected cancel note: %q", note)
	}
}
