package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"communityserver/internal/domain"
	"communityserver/internal/middleware"
	"communityserver/internal/service"
)

type initiateDonationRequest struct {
	ID          string `json:"id"`
	DonorID     string `json:"donorId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Anonymous   bool   `json:"anonymous"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Program     string `json:"program"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type donationDTO struct {
	ID          string                `json:"id"`
	DonorID     string                `json:"donorId"`
	FirstName   string                `json:"firstName"`
	LastName    string                `json:"lastName"`
	Anonymous   bool                  `json:"anonymous"`
	Amount      int64                 `json:"amount"`
	Currency    string                `json:"currency"`
	Program     domain.FundCategory   `json:"program"`
	Category    string                `json:"category"`
	Description string                `json:"description"`
	Receipt     string                `json:"receipt"`
	Status      domain.DonationStatus `json:"status"`
	PaymentInfo domain.GatewayPayment `json:"paymentInfo"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func toDonationDTO(d *domain.Donation) donationDTO {
	return donationDTO{
		ID:          d.ID,
		DonorID:     d.DonorID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		Anonymous:   d.Anonymous,
		Amount:      d.AmountMinor,
		Currency:    d.Currency,
		Program:     d.Fund,
		Category:    d.Category,
		Description: d.Description,
		Receipt:     d.Receipt,
		Status:      d.Status,
		PaymentInfo: d.Payment,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// DonationsInitiate handles POST /v1/donations. The id field is the
// caller's idempotency key; retries return the stored record without a
// second gateway order.
func (a *App) DonationsInitiate(w http.ResponseWriter, r *http.Request) {
	var req initiateDonationRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	result, err := a.Donations.Initiate(r.Context(), service.InitiateDonationInput{
		ID:          req.ID,
		DonorID:     req.DonorID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Anonymous:   req.Anonymous,
		AmountMinor: req.Amount,
		Currency:    req.Currency,
		Fund:        req.Program,
		Category:    req.Category,
		Description: req.Description,
		Country:     middleware.CountryFromContext(r.Context()),
	})
	if err != nil {
		a.domainError(w, err)
		return
	}

	code := http.StatusCreated
	if result.Replayed {
		code = http.StatusOK
	}
	a.json(w, code, map[string]any{
		"donation": toDonationDTO(result.Donation),
		"orderId":  result.OrderID,
	})
}

type confirmDonationRequest struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`
	Signature string `json:"signature"`
}

// DonationsConfirm handles POST /v1/donations/{id}/confirm, the gateway
// callback finalizing a payment.
func (a *App) DonationsConfirm(w http.ResponseWriter, r *http.Request) {
	var req confirmDonationRequest
	if err := decodeJSON(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	donation, err := a.Donations.Confirm(r.Context(), chi.URLParam(r, "id"), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationDTO(donation))
}

// DonationsFail handles POST /v1/donations/{id}/fail, the gateway
// callback for an unsuccessful checkout.
func (a *App) DonationsFail(w http.ResponseWriter, r *http.Request) {
	donation, err := a.Donations.Fail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationDTO(donation))
}

// DonationsRefund handles POST /v1/donations/{id}/refund (admin).
func (a *App) DonationsRefund(w http.ResponseWriter, r *http.Request) {
	donation, err := a.Donations.Refund(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, toDonationDTO(donation))
}

// DonationsRecent handles GET /v1/donations/recent, the public feed.
// Anonymous donors appear under the fixed placeholder names.
func (a *App) DonationsRecent(w http.ResponseWriter, r *http.Request) {
	items, err := a.Donations.ListRecent(r.Context(), 10)
	if err != nil {
		a.domainError(w, err)
		return
	}
	dtos := make([]donationDTO, 0, len(items))
	for i := range items {
		dtos = append(dtos, toDonationDTO(&items[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": dtos})
}
