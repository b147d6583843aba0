package httpadapter

import (
	"time"

	"github.com/shopspring/decimal"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/port"
)

// Money is rendered as a string so clients never see binary floating point.
func money(d decimal.Decimal) string { return d.StringFixed(2) }

type audienceDTO struct {
	County          string   `json:"county,omitempty" validate:"max=64"`
	City            string   `json:"city,omitempty" validate:"max=64"`
	EducationLevels []string `json:"education_levels,omitempty" validate:"max=20,dive,max=64"`
	Professions     []string `json:"professions,omitempty" validate:"max=20,dive,max=64"`
}

func (a audienceDTO) toDomain() domain.TargetAudience {
	return domain.TargetAudience{
		County:          a.County,
		City:            a.City,
		EducationLevels: a.EducationLevels,
		Professions:     a.Professions,
	}
}

type quoteRequest struct {
	ReachCount     int         `json:"reach_count"`
	DurationDays   int         `json:"duration_days"`
	TargetAudience audienceDTO `json:"target_audience"`
}

func (q quoteRequest) toDomain() domain.CampaignRequest {
	return domain.CampaignRequest{
		ReachCount:     q.ReachCount,
		DurationDays:   q.DurationDays,
		TargetAudience: q.TargetAudience.toDomain(),
	}
}

type tierDTO struct {
	Views     int    `json:"views"`
	UnitPrice string `json:"unit_price"`
	Cost      string `json:"cost"`
}

type quoteResponse struct {
	ReachCount   int       `json:"reach_count"`
	DurationDays int       `json:"duration_days"`
	ReachTier    string    `json:"reach_tier"`
	Policy       string    `json:"policy"`
	ReachCost    string    `json:"reach_cost"`
	DurationCost string    `json:"duration_cost"`
	BasePrice    string    `json:"base_price"`
	Multiplier   string    `json:"multiplier"`
	TotalPrice   string    `json:"total_price"`
	PricePerDay  string    `json:"price_per_day"`
	PricePerView string    `json:"price_per_view"`
	Tiers        []tierDTO `json:"tiers"`
}

func newQuoteResponse(q domain.PriceQuote) quoteResponse {
	tiers := make([]tierDTO, 0, len(q.Tiers))
	for _, t := range q.Tiers {
		tiers = append(tiers, tierDTO{Views: t.Views, UnitPrice: money(t.UnitPrice), Cost: money(t.Cost)})
	}
	return quoteResponse{
		ReachCount:   q.ReachCount,
		DurationDays: q.DurationDays,
		ReachTier:    q.ReachTier,
		Policy:       q.Policy,
		ReachCost:    money(q.ReachCost),
		DurationCost: money(q.DurationCost),
		BasePrice:    money(q.BasePrice),
		Multiplier:   q.Multiplier.String(),
		TotalPrice:   money(q.TotalPrice),
		PricePerDay:  money(q.PricePerDay),
		PricePerView: q.PricePerView.StringFixed(3),
		Tiers:        tiers,
	}
}

type createCampaignRequest struct {
	SchoolID       string           `json:"school_id" validate:"required,uuid"`
	SchoolType     string           `json:"school_type" validate:"required,oneof=dsvi manual"`
	AdType         string           `json:"ad_type" validate:"required,oneof=banner text video"`
	AdContent      string           `json:"ad_content" validate:"required,max=2000"`
	AdFileURL      string           `json:"ad_file_url,omitempty" validate:"omitempty,url"`
	TargetAudience audienceDTO      `json:"target_audience"`
	ReachCount     int              `json:"reach_count"`
	DurationDays   int              `json:"duration_days"`
	ExpectedPrice  *decimal.Decimal `json:"expected_price,omitempty"`
}

type reviewRequest struct {
	Decision   string `json:"decision" validate:"required,oneof=approve reject"`
	ReviewedBy string `json:"reviewed_by" validate:"required,max=128"`
	Notes      string `json:"notes,omitempty" validate:"max=2000"`
}

type paymentRequest struct {
	Status    string `json:"status" validate:"required,oneof=paid failed"`
	Reference string `json:"reference,omitempty" validate:"max=128"`
}

type campaignResponse struct {
	ID               string                `json:"id"`
	SchoolID         string                `json:"school_id"`
	SchoolType       string                `json:"school_type"`
	AdType           string                `json:"ad_type"`
	AdContent        string                `json:"ad_content"`
	AdFileURL        string                `json:"ad_file_url,omitempty"`
	TargetAudience   domain.TargetAudience `json:"target_audience"`
	ReachCount       int                   `json:"reach_count"`
	DurationDays     int                   `json:"duration_days"`
	Pricing          string                `json:"pricing"`
	PricingPolicy    string                `json:"pricing_policy"`
	Status           string                `json:"status"`
	PaymentStatus    string                `json:"payment_status"`
	PaymentReference string                `json:"payment_reference,omitempty"`
	Impressions      int64                 `json:"impressions"`
	Clicks           int64                 `json:"clicks"`
	ReviewedBy       string                `json:"reviewed_by,omitempty"`
	ReviewedAt       *time.Time            `json:"reviewed_at,omitempty"`
	AdminNotes       string                `json:"admin_notes,omitempty"`
	ExpiresAt        *time.Time            `json:"expires_at,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

func newCampaignResponse(c *domain.Campaign) campaignResponse {
	return campaignResponse{
		ID:               c.ID.String(),
		SchoolID:         c.SchoolID.String(),
		SchoolType:       c.SchoolType,
		AdType:           c.AdType,
		AdContent:        c.Content,
		AdFileURL:        c.FileURL,
		TargetAudience:   c.TargetAudience,
		ReachCount:       c.ReachCount,
		DurationDays:     c.DurationDays,
		Pricing:          money(c.Pricing),
		PricingPolicy:    c.PricingPolicy,
		Status:           string(c.Status),
		PaymentStatus:    string(c.PaymentStatus),
		PaymentReference: c.PaymentReference,
		Impressions:      c.Impressions,
		Clicks:           c.Clicks,
		ReviewedBy:       c.ReviewedBy,
		ReviewedAt:       c.ReviewedAt,
		AdminNotes:       c.AdminNotes,
		ExpiresAt:        c.ExpiresAt,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func newCampaignList(cs []domain.Campaign) []campaignResponse {
	out := make([]campaignResponse, 0, len(cs))
	for i := range cs {
		out = append(out, newCampaignResponse(&cs[i]))
	}
	return out
}

// adResponse is the public view of a serving ad; it leaves out pricing and
// review details.
type adResponse struct {
	ID         string     `json:"id"`
	SchoolID   string     `json:"school_id"`
	SchoolType string     `json:"school_type"`
	AdType     string     `json:"ad_type"`
	AdContent  string     `json:"ad_content"`
	AdFileURL  string     `json:"ad_file_url,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

type statsResponse struct {
	ByStatus    map[domain.CampaignStatus]int64 `json:"by_status"`
	Impressions int64                           `json:"impressions"`
	Clicks      int64                           `json:"clicks"`
	Revenue     string                          `json:"revenue"`
}

func newStatsResponse(s *port.StatsResp) statsResponse {
	return statsResponse{
		ByStatus:    s.ByStatus,
		Impressions: s.Impressions,
		Clicks:      s.Clicks,
		Revenue:     money(s.Revenue),
	}
}
