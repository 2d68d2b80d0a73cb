package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"communityserver/internal/domain"
	"communityserver/internal/service"
)

type createEventRequest struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartsAt    time.Time `json:"startsAt"`
	Capacity    int       `json:"capacity"`
}

type eventDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartsAt    time.Time `json:"startsAt"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toEventDTO(e *domain.Event) eventDTO {
	return eventDTO{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Location:    e.Location,
		StartsAt:    e.StartsAt,
		Capacity:    e.Capacity,
		CreatedAt:   e.CreatedAt,
	}
}

// EventsCreate handles POST /v1/events (admin).
func (a *App) EventsCreate(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	event, err := a.Events.Create(r.Context(), service.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		StartsAt:    req.StartsAt,
		Capacity:    req.Capacity,
	})
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusCreated, toEventDTO(event))
}

// EventsGet handles GET /v1/events/{id}.
func (a *App) EventsGet(w http.ResponseWriter, r *http.Request) {
	event, err := a.Events.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toEventDTO(event))
}

// EventsList handles GET /v1/events.
func (a *App) EventsList(w http.ResponseWriter, r *http.Request) {
	items, err := a.Events.List(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	dtos := make([]eventDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toEventDTO(&items[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos})
}
