package httpadapter

import (
	"net/http"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/pricing"
)

// handleQuote prices a campaign request for live display in the campaign
// builder. Non-positive or out-of-range reach and duration produce a 400
// naming the field; a quote is never returned for invalid input.
func (h *Handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !h.decode(w, r, &req) {
		h.metrics.quotes.WithLabelValues("rejected").Inc()
		return
	}
	quote, err := h.svc.Quote(r.Context(), req.toDomain())
	if err != nil {
		h.metrics.quotes.WithLabelValues("rejected").Inc()
		h.writeError(w, r, "quote", err)
		return
	}
	h.metrics.quotes.WithLabelValues("ok").Inc()
	h.writeJSON(w, http.StatusOK, newQuoteResponse(quote))
}

type targetingOptions struct {
	Counties        []string        `json:"counties"`
	EducationLevels []string        `json:"education_levels"`
	Professions     []string        `json:"professions"`
	ReachTiers      []pricing.Label `json:"reach_tiers"`
}

// handleTargetingOptions lists the values the campaign builder offers.
func (h *Handler) handleTargetingOptions(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, targetingOptions{
		Counties:        domain.Counties,
		EducationLevels: domain.EducationLevels,
		Professions:     domain.Professions,
		ReachTiers:      pricing.Labels(),
	})
}
