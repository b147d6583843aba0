package httpadapter

import (
	"net/http"
	"strconv"
)

// handleActiveAds returns ads eligible for display in the directory. An
// optional limit query parameter caps the result.
func (h *Handler) handleActiveAds(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		var err error
		if limit, err = strconv.Atoi(l); err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit", Field: "limit"})
			return
		}
	}
	ads, err := h.svc.ListActiveAds(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, "active ads", err)
		return
	}
	out := make([]adResponse, 0, len(ads))
	for _, c := range ads {
		out = append(out, adResponse{
			ID:         c.ID.String(),
			SchoolID:   c.SchoolID.String(),
			SchoolType: c.SchoolType,
			AdType:     c.AdType,
			AdContent:  c.Content,
			AdFileURL:  c.FileURL,
			ExpiresAt:  c.ExpiresAt,
		})
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleImpression records that an ad was shown. Unknown or no longer
// serving ads produce 404.
func (h *Handler) handleImpression(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.RecordImpression(r.Context(), id); err != nil {
		h.writeError(w, r, "impression", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleClick records a click on a serving ad.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.RecordClick(r.Context(), id); err != nil {
		h.writeError(w, r, "click", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
