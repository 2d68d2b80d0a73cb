package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"communityserver/internal/domain"
	"communityserver/internal/infra"
	"communityserver/internal/sqlinline"
)

// EventRepositoryPG implements domain.EventRepository.
type EventRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewEventRepository creates a new event repo.
func NewEventRepository(sqlExec infra.SQLExecutor) *EventRepositoryPG {
	return &EventRepositoryPG{sql: sqlExec}
}

// Create inserts a new catalogue entry.
func (r *EventRepositoryPG) Create(ctx context.Context, event *domain.Event) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertEvent,
		event.ID, event.Name, event.Description, event.Location, event.StartsAt, event.Capacity)
	return err
}

// GetByID returns one event or domain.ErrNotFound.
func (r *EventRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectEventByID, id)
	var e domain.Event
	if err := row.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.StartsAt, &e.Capacity, &e.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns the catalogue ordered by start time.
func (r *EventRepositoryPG) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListEvents)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.Location, &e.StartsAt, &e.Capacity, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
