// Package repo implements the domain repository contracts on PostgreSQL
// through the infra SQL executor.
package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"communityserver/internal/domain"
	"communityserver/internal/infra"
	"communityserver/internal/sqlinline"
)

// RegistrationRepositoryPG implements domain.RegistrationRepository.
type RegistrationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewRegistrationRepository creates a new registration repo.
func NewRegistrationRepository(sqlExec infra.SQLExecutor) *RegistrationRepositoryPG {
	return &RegistrationRepositoryPG{sql: sqlExec}
}

// Create inserts a new registration record.
func (r *RegistrationRepositoryPG) Create(ctx context.Context, reg *domain.Registration) error {
	history, err := json.Marshal(reg.History)
	if err != nil {
		return fmt.Errorf("marshal status history: %w", err)
	}
	details, err := json.Marshal(reg.Details)
	if err != nil {
		return fmt.Errorf("marshal details: %w", err)
	}
	userID := ""
	if reg.UserID != nil {
		userID = *reg.UserID
	}
	_, err = r.sql.Exec(ctx, sqlinline.QInsertRegistration,
		reg.ID, userID, reg.FirstName, reg.LastName, reg.Email, reg.Phone,
		reg.Address, reg.City, reg.State, reg.Zip,
		string(reg.Type), string(reg.Status), history,
		reg.Notes, reg.SpecialRequests, details, reg.CreatedAt)
	return err
}

// GetByID returns one registration or domain.ErrNotFound.
func (r *RegistrationRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectRegistrationByID, id)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

// AppendStatus overwrites the status and appends the history entry in a
// single UPDATE, so the two never diverge even under concurrent writers.
func (r *RegistrationRepositoryPG) AppendStatus(ctx context.Context, id string, status domain.RegistrationStatus, entry domain.StatusEntry) (*domain.Registration, error) {
	patch, err := json.Marshal([]domain.StatusEntry{entry})
	if err != nil {
		return nil, fmt.Errorf("marshal status entry: %w", err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QAppendRegistrationStatus, id, string(status), patch)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

// AppendStatusWhere applies the transition only when the current status is
// in the allowed set. A zero-row result means either a missing row or a
// guard rejection; a follow-up read distinguishes the two.
func (r *RegistrationRepositoryPG) AppendStatusWhere(ctx context.Context, id string, status domain.RegistrationStatus, entry domain.StatusEntry, allowed []domain.RegistrationStatus) (*domain.Registration, error) {
	patch, err := json.Marshal([]domain.StatusEntry{entry})
	if err != nil {
		return nil, fmt.Errorf("marshal status entry: %w", err)
	}
	allowedRaw := make([]string, len(allowed))
	for i, a := range allowed {
		allowedRaw[i] = string(a)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QAppendRegistrationStatusWhere, id, string(status), patch, allowedRaw)
	reg, err := scanRegistration(row)
	if err == nil {
		return reg, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrIllegalTransition
}

// List returns registrations matching the filter, newest first.
func (r *RegistrationRepositoryPG) List(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error) {
	typeFilter := ""
	if filter.Type != nil {
		typeFilter = string(*filter.Type)
	}
	statusFilter := ""
	if filter.Status != nil {
		statusFilter = string(*filter.Status)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.sql.Query(ctx, sqlinline.QListRegistrations, typeFilter, statusFilter, filter.Email, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// scanRegistration reads the canonical registration column order shared by
// every registration query in sqlinline.
func scanRegistration(row pgx.Row) (*domain.Registration, error) {
	var reg domain.Registration
	var userID sql.NullString
	var regType, status string
	var historyRaw, detailsRaw []byte
	if err := row.Scan(
		&reg.ID, &userID, &reg.FirstName, &reg.LastName, &reg.Email, &reg.Phone,
		&reg.Address, &reg.City, &reg.State, &reg.Zip,
		&regType, &status, &historyRaw,
		&reg.Notes, &reg.SpecialRequests, &detailsRaw, &reg.CreatedAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if userID.Valid {
		reg.UserID = &userID.String
	}
	reg.Type = domain.RegistrationType(regType)
	reg.Status = domain.RegistrationStatus(status)
	if len(historyRaw) > 0 {
		if err := json.Unmarshal(historyRaw, &reg.History); err != nil {
			return nil, fmt.Errorf("decode status history: %w", err)
		}
	}
	details, err := domain.DecodeDetails(reg.Type, detailsRaw)
	if err != nil {
		return nil, err
	}
	reg.Details = details
	return &reg, nil
}
