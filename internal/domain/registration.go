package domain

import (
	"fmt"
	"strings"
	"time"
)

// RegistrationType discriminates which variant payload a registration
// carries. It is set once at creation and never changes.
type RegistrationType string

const (
	RegistrationTypeGeneral   RegistrationType = "general"
	RegistrationTypeProgram   RegistrationType = "program"
	RegistrationTypeEvent     RegistrationType = "event"
	RegistrationTypeService   RegistrationType = "service"
	RegistrationTypeVolunteer RegistrationType = "volunteer"
)

// ParseRegistrationType validates a raw discriminator value.
func ParseRegistrationType(s string) (RegistrationType, error) {
	switch t := RegistrationType(strings.ToLower(strings.TrimSpace(s))); t {
	case RegistrationTypeGeneral, RegistrationTypeProgram, RegistrationTypeEvent,
		RegistrationTypeService, RegistrationTypeVolunteer:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// RegistrationStatus enumerates lifecycle states shared by every variant.
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "pending"
	StatusApproved  RegistrationStatus = "approved"
	StatusRejected  RegistrationStatus = "rejected"
	StatusCancelled RegistrationStatus = "cancelled"
	StatusCompleted RegistrationStatus = "completed"
)

// ParseRegistrationStatus validates a raw status value.
func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	switch st := RegistrationStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return st, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", ErrIllegalTransition, s)
	}
}

// StatusEntry is one element of a registration's append-only history.
// Entries are never edited or removed after insertion.
type StatusEntry struct {
	Status    RegistrationStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`
	Note      string             `json:"note"`
}

// Registration is the base intake record. Shared fields live here; the
// variant-specific payload hangs off Details, selected by Type.
type Registration struct {
	ID              string
	UserID          *string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	City            string
	State           string
	Zip             string
	Type            RegistrationType
	Status          RegistrationStatus
	History         []StatusEntry
	Notes           string
	SpecialRequests string
	Details         RegistrationDetails
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RegistrationDetails is the sealed payload interface implemented by the
// five variant types in variants.go.
type RegistrationDetails interface {
	RegistrationType() RegistrationType
}

// NewStatusEntry builds a history entry, defaulting the note when empty.
func NewStatusEntry(status RegistrationStatus, now time.Time, note string) StatusEntry {
	if strings.TrimSpace(note) == "" {
		note = "Status changed to " + string(status)
	}
	return StatusEntry{Status: status, Timestamp: now.UTC(), Note: note}
}

// ApplyStatus overwrites the current status and appends a history entry.
// Re-applying the current status is legal and still appends: the history
// doubles as an audit trail of repeated admin confirmations.
func (r *Registration) ApplyStatus(status RegistrationStatus, now time.Time, note string) StatusEntry {
	entry := NewStatusEntry(status, now, note)
	r.Status = status
	r.History = append(r.History, entry)
	r.UpdatedAt = entry.Timestamp
	return entry
}

// CanCancel reports whether cancellation is permitted from the current state.
func (r *Registration) CanCancel() bool {
	return r.Status == StatusPending || r.Status == StatusApproved
}

// Cancel moves the registration to cancelled, or fails when the current
// state does not allow it.
func (r *Registration) Cancel(now time.Time, note string) (StatusEntry, error) {
	if !r.CanCancel() {
		return StatusEntry{}, fmt.Errorf("%w: cannot cancel from %q", ErrIllegalTransition, r.Status)
	}
	if strings.TrimSpace(note) == "" {
		note = "Cancelled by requester"
	}
	return r.ApplyStatus(StatusCancelled, now, note), nil
}

// RegistrationFilter narrows List queries.
type RegistrationFilter struct {
	Type   *RegistrationType
	Status *RegistrationStatus
	Email  string
	Limit  int
}
