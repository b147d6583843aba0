package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"promo-boost/internal/adapter/usecase"
	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/port"
	"promo-boost/internal/core/port/mocks"
	"promo-boost/internal/core/pricing"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockCampaignRepository) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := usecase.NewCampaignUseCase(repo, pricing.NewDefaultCalculator(), usecase.Limits{MaxReach: 100000, MaxDuration: 365})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger), repo
}

func do(t *testing.T, h *Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHandleQuote(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/quotes", `{"reach_count":10000,"duration_days":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[quoteResponse](t, rec)
	assert.Equal(t, "484.00", resp.TotalPrice)
	assert.Equal(t, "482.00", resp.ReachCost)
	assert.Equal(t, "2.00", resp.DurationCost)
	assert.Equal(t, "484.00", resp.PricePerDay)
	assert.Equal(t, "0.048", resp.PricePerView)
	assert.Equal(t, "Elite", resp.ReachTier)
	assert.Equal(t, pricing.PolicyVersion, resp.Policy)
	assert.Len(t, resp.Tiers, 5)
}

func TestHandleQuote_Targeting(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/quotes",
		`{"reach_count":500,"duration_days":14,"target_audience":{"county":"Montserrado","professions":["parent","teacher"]}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[quoteResponse](t, rec)
	assert.Equal(t, "66.00", resp.BasePrice)
	assert.Equal(t, "91.08", resp.TotalPrice)
}

func TestHandleQuote_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"zero reach", `{"reach_count":0,"duration_days":1}`, "reach_count"},
		{"negative duration", `{"reach_count":10,"duration_days":-3}`, "duration_days"},
		{"reach above limit", `{"reach_count":100001,"duration_days":1}`, "reach_count"},
		{"duration above limit", `{"reach_count":10,"duration_days":366}`, "duration_days"},
		{"malformed", `{"reach_count":`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := do(t, h, http.MethodPost, "/api/v1/quotes", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decodeBody[errorResponse](t, rec)
			assert.Equal(t, tt.field, resp.Field)
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleTargetingOptions(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/api/v1/targeting/options", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[targetingOptions](t, rec)
	assert.Len(t, resp.Counties, 15)
	assert.Contains(t, resp.Counties, "Montserrado")
	assert.NotEmpty(t, resp.EducationLevels)
	assert.NotEmpty(t, resp.Professions)
	assert.Equal(t, "Starter", resp.ReachTiers[0].Name)
}

const createBody = `{
	"school_id": "0b0c2a57-5a8e-4c1b-9a53-3f0d6e4f9a10",
	"school_type": "dsvi",
	"ad_type": "banner",
	"ad_content": "Enrol now for the new term",
	"reach_count": 500,
	"duration_days": 14,
	"target_audience": {"county": "Montserrado", "professions": ["teacher", "parent", "parent"]}
	%s
}`

func TestHandleCreateCampaign(t *testing.T) {
	h, repo := newTestHandler(t)

	var stored *domain.Campaign
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) { stored = c }).
		Return(nil)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/", strings.Replace(createBody, "%s", `,"expected_price":"91.08"`, 1))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decodeBody[campaignResponse](t, rec)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID.String(), resp.ID)
	assert.Equal(t, "91.08", resp.Pricing)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "pending", resp.PaymentStatus)
	assert.Equal(t, []string{"parent", "teacher"}, resp.TargetAudience.Professions)
	assert.True(t, decimal.RequireFromString("91.08").Equal(stored.Pricing))
}

func TestHandleCreateCampaign_PriceChanged(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/", strings.Replace(createBody, "%s", `,"expected_price":85.5`, 1))
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeBody[errorResponse](t, rec).Error, "91.08")
}

func TestHandleCreateCampaign_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"bad school id", `{"school_id":"nope","school_type":"dsvi","ad_type":"banner","ad_content":"x","reach_count":1,"duration_days":1}`, "school_id"},
		{"bad school type", `{"school_id":"0b0c2a57-5a8e-4c1b-9a53-3f0d6e4f9a10","school_type":"public","ad_type":"banner","ad_content":"x","reach_count":1,"duration_days":1}`, "school_type"},
		{"missing content", `{"school_id":"0b0c2a57-5a8e-4c1b-9a53-3f0d6e4f9a10","school_type":"dsvi","ad_type":"text","reach_count":1,"duration_days":1}`, "ad_content"},
		{"zero reach", `{"school_id":"0b0c2a57-5a8e-4c1b-9a53-3f0d6e4f9a10","school_type":"dsvi","ad_type":"text","ad_content":"x","reach_count":0,"duration_days":1}`, "reach_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			rec := do(t, h, http.MethodPost, "/api/v1/campaigns/", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.field, decodeBody[errorResponse](t, rec).Field)
		})
	}
}

func TestHandleGetCampaign(t *testing.T) {
	h, repo := newTestHandler(t)
	id := uuid.New()
	missing := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, id).Return(&domain.Campaign{
		ID:            id,
		SchoolID:      uuid.New(),
		Pricing:       decimal.RequireFromString("12.0000"),
		PricingPolicy: pricing.PolicyVersion,
		Status:        domain.StatusApproved,
		PaymentStatus: domain.PaymentPending,
	}, nil)
	repo.EXPECT().GetCampaign(mock.Anything, missing).Return(nil, domain.ErrCampaignNotFound)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[campaignResponse](t, rec)
	assert.Equal(t, "12.00", resp.Pricing)
	assert.Equal(t, "approved", resp.Status)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleListCampaigns(t *testing.T) {
	h, repo := newTestHandler(t)
	school := uuid.New()

	repo.EXPECT().
		ListCampaigns(mock.Anything, port.CampaignFilter{SchoolID: &school, Status: domain.StatusActive, Limit: 5}).
		Return([]domain.Campaign{{ID: uuid.New(), SchoolID: school, Status: domain.StatusActive}}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/campaigns/?school_id="+school.String()+"&status=active&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]campaignResponse](t, rec), 1)

	rec = do(t, h, http.MethodGet, "/api/v1/campaigns/?status=paused", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "status", decodeBody[errorResponse](t, rec).Field)
}

func TestHandleReviewCampaign(t *testing.T) {
	h, repo := newTestHandler(t)
	pending := uuid.New()
	active := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, pending).Return(&domain.Campaign{ID: pending, Status: domain.StatusPending}, nil).Once()
	repo.EXPECT().
		UpdateReview(mock.Anything, pending, mock.MatchedBy(func(r port.Review) bool {
			return r.Status == domain.StatusApproved && r.ReviewedBy == "admin@dsvi.lr"
		})).
		Return(nil)
	repo.EXPECT().GetCampaign(mock.Anything, pending).Return(&domain.Campaign{ID: pending, Status: domain.StatusApproved}, nil).Once()
	repo.EXPECT().GetCampaign(mock.Anything, active).Return(&domain.Campaign{ID: active, Status: domain.StatusActive}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/"+pending.String()+"/review",
		`{"decision":"approve","reviewed_by":"admin@dsvi.lr"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "approved", decodeBody[campaignResponse](t, rec).Status)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/"+active.String()+"/review",
		`{"decision":"reject","reviewed_by":"admin@dsvi.lr"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/campaigns/"+active.String()+"/review",
		`{"decision":"maybe","reviewed_by":"admin@dsvi.lr"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "decision", decodeBody[errorResponse](t, rec).Field)
}

func TestHandleActivateCampaign_RequiresPayment(t *testing.T) {
	h, repo := newTestHandler(t)
	id := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, id).Return(&domain.Campaign{
		ID: id, Status: domain.StatusApproved, PaymentStatus: domain.PaymentPending,
	}, nil)

	rec := do(t, h, http.MethodPost, "/api/v1/campaigns/"+id.String()+"/activate", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandleActiveAdsAndEvents(t *testing.T) {
	h, repo := newTestHandler(t)
	id := uuid.New()
	gone := uuid.New()
	expires := time.Now().Add(48 * time.Hour)

	repo.EXPECT().ListServing(mock.Anything, mock.Anything, 3).Return([]domain.Campaign{{
		ID: id, SchoolID: uuid.New(), SchoolType: "dsvi", AdType: "text", Content: "Open day",
		Pricing: decimal.RequireFromString("50"), Status: domain.StatusActive, ExpiresAt: &expires,
	}}, nil)
	repo.EXPECT().IncrementEvent(mock.Anything, id, port.EventImpression, mock.Anything).Return(nil)
	repo.EXPECT().IncrementEvent(mock.Anything, id, port.EventClick, mock.Anything).Return(nil)
	repo.EXPECT().IncrementEvent(mock.Anything, gone, port.EventClick, mock.Anything).Return(domain.ErrCampaignNotFound)

	rec := do(t, h, http.MethodGet, "/api/v1/ads/active?limit=3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	ads := decodeBody[[]map[string]any](t, rec)
	require.Len(t, ads, 1)
	assert.Equal(t, "Open day", ads[0]["ad_content"])
	assert.NotContains(t, ads[0], "pricing")

	rec = do(t, h, http.MethodPost, "/api/v1/ads/"+id.String()+"/impression", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/v1/ads/"+id.String()+"/click", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodPost, "/api/v1/ads/"+gone.String()+"/click", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleStatsOverview(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().GetStats(mock.Anything).Return(&port.StatsResp{
		ByStatus:    map[domain.CampaignStatus]int64{domain.StatusActive: 2, domain.StatusPending: 1},
		Impressions: 120,
		Clicks:      7,
		Revenue:     decimal.RequireFromString("175.0800"),
	}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/stats/overview", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[statsResponse](t, rec)
	assert.Equal(t, "175.08", resp.Revenue)
	assert.Equal(t, int64(2), resp.ByStatus[domain.StatusActive])
	assert.Equal(t, int64(7), resp.Clicks)
}

func TestHandleStatsOverview_InternalError(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().GetStats(mock.Anything).Return(nil, assert.AnError)

	rec := do(t, h, http.MethodGet, "/api/v1/stats/overview", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", decodeBody[errorResponse](t, rec).Error)
}

func TestHandleExportCampaigns(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().ListCampaigns(mock.Anything, port.CampaignFilter{}).Return([]domain.Campaign{{
		ID: uuid.New(), SchoolID: uuid.New(), SchoolType: "manual", AdType: "banner",
		ReachCount: 100, DurationDays: 1, Pricing: decimal.RequireFromString("12"),
		Status: domain.StatusPending, PaymentStatus: domain.PaymentPending,
	}}, nil)

	rec := do(t, h, http.MethodGet, "/api/v1/admin/campaigns/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "campaigns.xlsx")

	xl, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer xl.Close()
	rows, err := xl.GetRows("Campaigns")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestHandler(t)

	do(t, h, http.MethodPost, "/api/v1/quotes", `{"reach_count":1,"duration_days":1}`)
	do(t, h, http.MethodPost, "/api/v1/quotes", `{"reach_count":0,"duration_days":1}`)

	rec := do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `promo_quotes_total{outcome="ok"} 1`)
	assert.Contains(t, body, `promo_quotes_total{outcome="rejected"} 1`)
	assert.Contains(t, body, `http_requests_total{method="POST",route="/api/v1/quotes",status="400"} 1`)
}
