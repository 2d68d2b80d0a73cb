package service

import (
	"context"
	"fmt"
	"sync"

	"communityserver/internal/domain"
	"communityserver/internal/gateway"
)

type fakeRegistrationRepo struct {
	mu   sync.Mutex
	rows map[string]*domain.Registration
}

func newFakeRegistrationRepo() *fakeRegistrationRepo {
	return &fakeRegistrationRepo{rows: map[string]*domain.Registration{}}
}

func (f *fakeRegistrationRepo) Create(_ context.Context, reg *domain.Registration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	clone := *reg
	f.rows[reg.ID] = &clone
	return nil
}

func (f *fakeRegistrationRepo) GetByID(_ context.Context, id string) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *reg
	return &clone, nil
}

func (f *fakeRegistrationRepo) AppendStatus(_ context.Context, id string, status domain.RegistrationStatus, entry domain.StatusEntry) (*domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reg, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	reg.Status = status
	reg.History = append(reg.History, entry)
	reg.UpdatedAt = entry.Timestamp
	clone := *reg
	return &clone, nil
}

func (f *fakeRegistrationRepo) AppendStatusWhere(ctx context.Context, id string, status domain.RegistrationStatus, entry domain.StatusEntry, allowed []domain.RegistrationStatus) (*domain.Registration, error) {
	f.mu.Lock()
	reg, ok := f.rows[id]
	if !ok {
		f.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	permitted := false
	for _, s := range allowed {
		if reg.Status == s {
			permitted = true
			break
		}
	}
	f.mu.Unlock()
	if !permitted {
		return nil, fmt.Errorf("%w: cannot move to %q", domain.ErrIllegalTransition, status)
	}
	return f.AppendStatus(ctx, id, status, entry)
}

func (f *fakeRegistrationRepo) List(_ context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Registration
	for _, reg := range f.rows {
		if filter.Type != nil && reg.Type != *filter.Type {
			continue
		}
		if filter.Status != nil && reg.Status != *filter.Status {
			continue
		}
		if filter.Email != "" && reg.Email != filter.Email {
			continue
		}
		out = append(out, *reg)
	}
	return out, nil
}

type fakeDonationRepo struct {
	mu   sync.Mutex
	rows map[string]*domain.Donation
}

func newFakeDonationRepo() *fakeDonationRepo {
	return &fakeDonationRepo{rows: map[string]*domain.Donation{}}
}

func (f *fakeDonationRepo) Create(_ context.Context, donation *domain.Donation) (*domain.Donation, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.rows[donation.ID]; ok {
		clone := *existing
		return &clone, false, nil
	}
	clone := *donation
	f.rows[donation.ID] = &clone
	out := clone
	return &out, true, nil
}

func (f *fakeDonationRepo) GetByID(_ context.Context, id string) (*domain.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	donation, ok := f.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *donation
	return &clone, nil
}

func (f *fakeDonationRepo) Finalize(_ context.Context, donation *domain.Donation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.rows[donation.ID]
	if !ok {
		return domain.ErrNotFound
	}
	switch donation.Status {
	case domain.DonationRefunded:
		if stored.Status != domain.DonationCompleted {
			return domain.ErrIllegalTransition
		}
	default:
		if stored.Status != domain.DonationPending && stored.Status != domain.DonationProcessing {
			return domain.ErrAlreadyFinalized
		}
	}
	clone := *donation
	f.rows[donation.ID] = &clone
	return nil
}

func (f *fakeDonationRepo) ListRecent(_ context.Context, limit int) ([]domain.Donation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Donation
	for _, d := range f.rows {
		if len(out) >= limit {
			break
		}
		out = append(out, *d)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeEventRepo struct {
	events map[string]*domain.Event
}

func (f *fakeEventRepo) Create(_ context.Context, event *domain.Event) error {
	if f.events == nil {
		f.events = map[string]*domain.Event{}
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id string) (*domain.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return event, nil
}

func (f *fakeEventRepo) List(_ context.Context) ([]domain.Event, error) {
	var out []domain.Event
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, nil
}

type fakeOrderCreator struct {
	calls  int
	nextID string
	err    error
}

func (f *fakeOrderCreator) CreateOrder(_ context.Context, amountMinor int64, currency, receipt string) (*gateway.Order, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	id := f.nextID
	if id == "" {
		id = "order_test"
	}
	return &gateway.Order{ID: id, AmountMinor: amountMinor, Currency: currency, Receipt: receipt, Status: "created"}, nil
}
