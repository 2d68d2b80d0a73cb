package domain

import "context"

// UserRepository defines access methods for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// RegistrationRepository handles persistence for the polymorphic
// registration records.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	// AppendStatus overwrites the status and appends the history entry in a
	// single statement so the two can never diverge.
	AppendStatus(ctx context.Context, id string, status RegistrationStatus, entry StatusEntry) (*Registration, error)
	// AppendStatusWhere behaves like AppendStatus but only applies when the
	// current status is one of the allowed values. It returns ErrNotFound
	// when the row does not exist and ErrIllegalTransition when the guard
	// rejects the row.
	AppendStatusWhere(ctx context.Context, id string, status RegistrationStatus, entry StatusEntry, allowed []RegistrationStatus) (*Registration, error)
	List(ctx context.Context, filter RegistrationFilter) ([]Registration, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// Create inserts the donation unless its id already exists; it returns
	// the stored row either way, plus whether an insert happened.
	Create(ctx context.Context, donation *Donation) (*Donation, bool, error)
	GetByID(ctx context.Context, id string) (*Donation, error)
	// Finalize applies the donation's current status and payment fields to
	// the stored row, guarded on the row still being pending or processing.
	Finalize(ctx context.Context, donation *Donation) error
	ListRecent(ctx context.Context, limit int) ([]Donation, error)
}

// EventRepository handles the event catalogue.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]Event, error)
}

// StatsRepository aggregates counters for the admin dashboard.
type StatsRepository interface {
	Summary(ctx context.Context) (*StatsSummary, error)
}

// StatsSummary is the aggregate snapshot returned to the admin dashboard.
type StatsSummary struct {
	RegistrationsByType   map[RegistrationType]int
	RegistrationsByStatus map[RegistrationStatus]int
	DonationTotalsByFund  map[FundCategory]int64
	DonationCount         int
}
