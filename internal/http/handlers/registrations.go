package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"communityserver/internal/domain"
	"communityserver/internal/service"
)

type createRegistrationRequest struct {
	UserID           *string         `json:"userId,omitempty"`
	FirstName        string          `json:"firstName"`
	LastName         string          `json:"lastName"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	City             string          `json:"city"`
	State            string          `json:"state"`
	Zip              string          `json:"zip"`
	RegistrationType string          `json:"registrationType"`
	Notes            string          `json:"notes"`
	SpecialRequests  string          `json:"specialRequests"`
	Details          json.RawMessage `json:"details"`
}

type registrationDTO struct {
	ID               string                     `json:"id"`
	UserID           *string                    `json:"userId,omitempty"`
	FirstName        string                     `json:"firstName"`
	LastName         string                     `json:"lastName"`
	Email            string                     `json:"email"`
	Phone            string                     `json:"phone"`
	Address          string                     `json:"address,omitempty"`
	City             string                     `json:"city,omitempty"`
	State            string                     `json:"state,omitempty"`
	Zip              string                     `json:"zip,omitempty"`
	RegistrationType domain.RegistrationType    `json:"registrationType"`
	Status           domain.RegistrationStatus  `json:"status"`
	StatusHistory    []domain.StatusEntry       `json:"statusHistory"`
	Notes            string                     `json:"notes,omitempty"`
	SpecialRequests  string                     `json:"specialRequests,omitempty"`
	Details          domain.RegistrationDetails `json:"details"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
}

func toRegistrationDTO(reg *domain.Registration) registrationDTO {
	return registrationDTO{
		ID:               reg.ID,
		UserID:           reg.UserID,
		FirstName:        reg.FirstName,
		LastName:         reg.LastName,
		Email:            reg.Email,
		Phone:            reg.Phone,
		Address:          reg.Address,
		City:             reg.City,
		State:            reg.State,
		Zip:              reg.Zip,
		RegistrationType: reg.Type,
		Status:           reg.Status,
		StatusHistory:    reg.History,
		Notes:            reg.Notes,
		SpecialRequests:  reg.SpecialRequests,
		Details:          reg.Details,
		CreatedAt:        reg.CreatedAt,
		UpdatedAt:        reg.UpdatedAt,
	}
}

// RegistrationsCreate handles POST /v1/registrations.
func (a *App) RegistrationsCreate(w http.ResponseWriter, r *http.Request) {
	var req createRegistrationRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	regType, err := domain.ParseRegistrationType(req.RegistrationType)
	if err != nil {
		a.domainError(w, err)
		return
	}
	details, err := domain.DecodeDetails(regType, req.Details)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	reg, err := a.Registrations.Create(r.Context(), service.CreateRegistrationInput{
		UserID:          req.UserID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Zip:             req.Zip,
		Type:            req.RegistrationType,
		Notes:           req.Notes,
		SpecialRequests: req.SpecialRequests,
		Details:         details,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toRegistrationDTO(reg))
}

// RegistrationsGet handles GET /v1/registrations/{id}.
func (a *App) RegistrationsGet(w http.ResponseWriter, r *http.Request) {
	reg, err := a.Registrations.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toRegistrationDTO(reg))
}

// RegistrationsList handles GET /v1/registrations with type/status/email filters.
func (a *App) RegistrationsList(w http.ResponseWriter, r *http.Request) {
	var filter domain.RegistrationFilter
	if raw := r.URL.Query().Get("type"); raw != "" {
		t, err := domain.ParseRegistrationType(raw)
		if err != nil {
			a.domainError(w, err)
			return
		}
		filter.Type = &t
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		st, err := domain.ParseRegistrationStatus(raw)
		if err != nil {
			a.error(w, http.StatusBadRequest, "bad_request", "unknown status filter")
			return
		}
		filter.Status = &st
	}
	filter.Email = r.URL.Query().Get("email")

	items, err := a.Registrations.List(r.Context(), filter)
	if err != nil {
		a.domainError(w, err)
		return
	}
	dtos := make([]registrationDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toRegistrationDTO(&items[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos})
}

type transitionRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// RegistrationsTransition handles POST /v1/registrations/{id}/status (admin).
func (a *App) RegistrationsTransition(w http.ResponseWriter, r *http.Request) {
	var req transitionRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	reg, err := a.Registrations.TransitionStatus(r.Context(), chi.URLParam(r, "id"), req.Status, req.Note)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toRegistrationDTO(reg))
}

type cancelRequest struct {
	Note string `json:"note"`
}

// RegistrationsCancel handles POST /v1/registrations/{id}/cancel.
func (a *App) RegistrationsCancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if r.Body != nil {
		_ = decodeJSON(r, &req)
	}
	reg, err := a.Registrations.Cancel(r.Context(), chi.URLParam(r, "id"), req.Note)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toRegistrationDTO(reg))
}
