package httpadapter

import "net/http"

// handleStatsOverview returns campaign counts by status, total impressions
// and clicks, and revenue from paid campaigns. Internal errors produce
// HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newStatsResponse(stats))
}
