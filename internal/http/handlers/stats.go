package handlers

import "net/http"

// StatsSummary handles GET /v1/stats/summary (admin).
func (a *App) StatsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.Stats.Summary(r.Context())
	if err != nil {
		a.domainError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"registrationsByType":   summary.RegistrationsByType,
		"registrationsByStatus": summary.RegistrationsByStatus,
		"donationTotalsByFund":  summary.DonationTotalsByFund,
		"donationCount":         summary.DonationCount,
	})
}
