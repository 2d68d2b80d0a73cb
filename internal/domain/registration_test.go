package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseRegistrationType(t *testing.T) {
	for _, raw := range []string{"general", "program", "event", "service", "volunteer", " Volunteer "} {
		if _, err := ParseRegistrationType(raw); err != nil {
			t.Fatalf("ParseRegistrationType(%q) returned error: %v", raw, err)
		}
	}
	if _, err := ParseRegistrationType("membership"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestApplyStatusAppendsHistory(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	reg := &Registration{ID: "r1", Type: RegistrationTypeGeneral}
	reg.ApplyStatus(StatusPending, now, "")

	if len(reg.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(reg.History))
	}
	if reg.History[0].Note != "Status changed to pending" {
		t.Fatalf("unexpected default note: %q", reg.History[0].Note)
	}

	reg.ApplyStatus(StatusApproved, now.Add(time.Hour), "looks good")
	reg.ApplyStatus(StatusApproved, now.Add(2*time.Hour), "")

	if len(reg.History) != 3 {
		t.Fatalf("expected re-applied status to append, got %d entries", len(reg.History))
	}
	if reg.Status != StatusApproved {
		t.Fatalf("status mismatch: %q", reg.Status)
	}
	last := reg.History[len(reg.History)-1]
	if last.Status != reg.Status {
		t.Fatalf("final history entry %q does not match status %q", last.Status, reg.Status)
	}
}

func TestCancelOnlyFromPendingOrApproved(t *testing.T) {
	now := time.Now()
	for _, status := range []RegistrationStatus{StatusPending, StatusApproved} {
		reg := &Registration{ID: "r1", Status: status}
		if _, err := reg.Cancel(now, ""); err != nil {
			t.Fatalf("cancel from %q returned error: %v", status, err)
		}
		if reg.Status != StatusCancelled {
			t.Fatalf("expected cancelled, got %q", reg.Status)
		}
	}
	for _, status := range []RegistrationStatus{StatusRejected, StatusCompleted, StatusCancelled} {
		reg := &Registration{ID: "r1", Status: status}
		if _, err := reg.Cancel(now, ""); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("cancel from %q: expected ErrIllegalTransition, got %v", status, err)
		}
	}
}

func TestDecodeDetailsSelectsVariant(t *testing.T) {
	raw := []byte(`{"volunteerType":"weekend","emergencyContact":{"name":"A","phone":"1"}}`)
	details, err := DecodeDetails(RegistrationTypeVolunteer, raw)
	if err != nil {
		t.Fatalf("DecodeDetails returned error: %v", err)
	}
	vol, ok := details.(VolunteerDetails)
	if !ok {
		t.Fatalf("expected VolunteerDetails, got %T", details)
	}
	if vol.VolunteerType != "weekend" || vol.EmergencyContact.Name != "A" {
		t.Fatalf("unexpected payload: %+v", vol)
	}
	if details.RegistrationType() != RegistrationTypeVolunteer {
		t.Fatalf("discriminator mismatch: %q", details.RegistrationType())
	}

	if _, err := DecodeDetails(RegistrationType("bogus"), raw); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
}
