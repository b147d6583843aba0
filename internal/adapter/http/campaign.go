package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/port"
)

// handleCreateCampaign submits a campaign. The price is computed once on
// the server and stored; expected_price, when sent, must match it to the
// cent or the request fails with 409 so the school sees the new price
// before paying.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.CreateCampaign(r.Context(), port.CreateCampaignInput{
		SchoolID:   uuid.MustParse(req.SchoolID),
		SchoolType: req.SchoolType,
		AdType:     req.AdType,
		Content:    req.AdContent,
		FileURL:    req.AdFileURL,
		Request: domain.CampaignRequest{
			ReachCount:     req.ReachCount,
			DurationDays:   req.DurationDays,
			TargetAudience: req.TargetAudience.toDomain(),
		},
		ExpectedPrice: req.ExpectedPrice,
	})
	if err != nil {
		h.writeError(w, r, "create campaign", err)
		return
	}
	h.logger.Info("campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("school_id", c.SchoolID.String()),
		slog.String("pricing", money(c.Pricing)))
	h.writeJSON(w, http.StatusCreated, newCampaignResponse(c))
}

// handleListCampaigns accepts optional school_id, status and limit query
// parameters.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q      = r.URL.Query()
		filter port.CampaignFilter
	)
	if sid := q.Get("school_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid school_id", Field: "school_id"})
			return
		}
		filter.SchoolID = &id
	}
	if status := q.Get("status"); status != "" {
		switch s := domain.CampaignStatus(status); s {
		case domain.StatusPending, domain.StatusApproved, domain.StatusActive, domain.StatusCompleted, domain.StatusRejected:
			filter.Status = s
		default:
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status", Field: "status"})
			return
		}
	}
	if l := q.Get("limit"); l != "" {
		limit, err := strconv.Atoi(l)
		if err != nil || limit < 1 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit", Field: "limit"})
			return
		}
		filter.Limit = limit
	}

	cs, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, "list campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignList(cs))
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

// handleReviewCampaign records an admin approval or rejection. Only
// pending campaigns can be reviewed; others yield 409.
func (h *Handler) handleReviewCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req reviewRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.ReviewCampaign(r.Context(), id, port.ReviewInput{
		Approve:    req.Decision == "approve",
		ReviewedBy: req.ReviewedBy,
		Notes:      req.Notes,
	})
	if err != nil {
		h.writeError(w, r, "review campaign", err)
		return
	}
	h.logger.Info("campaign reviewed",
		slog.String("campaign_id", id.String()),
		slog.String("status", string(c.Status)))
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

func (h *Handler) handleRecordPayment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var req paymentRequest
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.RecordPayment(r.Context(), id, port.Payment{
		Status:    domain.PaymentStatus(req.Status),
		Reference: req.Reference,
	})
	if err != nil {
		h.writeError(w, r, "record payment", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}

func (h *Handler) handleActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.svc.ActivateCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, "activate campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, newCampaignResponse(c))
}
