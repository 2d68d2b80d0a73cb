package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"communityserver/internal/domain"
	"communityserver/internal/service"
)

// App is the handler container holding the service layer and logger.
type App struct {
	Registrations *service.RegistrationService
	Donations     *service.DonationService
	Events        *service.EventService
	Stats         domain.StatsRepository
	Logger        zerolog.Logger
}

// NewApp constructs the handler container.
func NewApp(
	registrations *service.RegistrationService,
	donations *service.DonationService,
	events *service.EventService,
	stats domain.StatsRepository,
	logger zerolog.Logger,
) *App {
	return &App{
		Registrations: registrations,
		Donations:     donations,
		Events:        events,
		Stats:         stats,
		Logger:        logger,
	}
}

type errorBody struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]any{"error": errorBody{Code: kind, Message: message}})
}

func (a *App) validationError(w http.ResponseWriter, verr *domain.ValidationError) {
	a.json(w, http.StatusBadRequest, map[string]any{"error": errorBody{
		Code:    "validation_failed",
		Message: verr.Error(),
		Fields:  verr.Fields,
	}})
}

// domainError maps domain sentinel errors onto the HTTP error envelope.
func (a *App) domainError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		a.validationError(w, verr)
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "record not found")
	case errors.Is(err, domain.ErrUnknownVariant):
		a.error(w, http.StatusBadRequest, "unknown_registration_type", err.Error())
	case errors.Is(err, domain.ErrUnknownDonor):
		a.error(w, http.StatusBadRequest, "unknown_donor", err.Error())
	case errors.Is(err, domain.ErrInvalidAmount):
		a.error(w, http.StatusBadRequest, "invalid_amount", err.Error())
	case errors.Is(err, domain.ErrIllegalTransition):
		a.error(w, http.StatusConflict, "illegal_transition", err.Error())
	case errors.Is(err, domain.ErrAlreadyFinalized):
		a.error(w, http.StatusConflict, "already_finalized", err.Error())
	case errors.Is(err, domain.ErrInvalidSignature):
		a.error(w, http.StatusBadRequest, "invalid_signature", err.Error())
	case errors.Is(err, domain.ErrGatewayFailure):
		a.error(w, http.StatusBadGateway, "gateway_failure", err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		a.error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, 1<<20)
	return json.NewDecoder(r.Body).Decode(dst)
}
