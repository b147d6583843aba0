package domain

import "github.com/shopspring/decimal"

// CampaignRequest is the transient input of the pricing engine. It is built
// by the campaign builder and never persisted as-is.
type CampaignRequest struct {
	ReachCount     int            `json:"reach_count"`
	DurationDays   int            `json:"duration_days"`
	TargetAudience TargetAudience `json:"target_audience"`
}

// Validate rejects non-positive reach or duration.
func (r CampaignRequest) Validate() error {
	if r.ReachCount < 1 {
		return &ValidationError{Field: "reach_count", Reason: "must be at least 1"}
	}
	if r.DurationDays < 1 {
		return &ValidationError{Field: "duration_days", Reason: "must be at least 1"}
	}
	return nil
}

// TierUsage records how many views were priced inside one reach tier.
type TierUsage struct {
	Views     int             `json:"views"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Cost      decimal.Decimal `json:"cost"`
}

// PriceQuote is the immutable output of the pricing engine. All amounts
// keep full precision; round only for display.
type PriceQuote struct {
	ReachCount   int
	DurationDays int

	ReachCost    decimal.Decimal
	DurationCost decimal.Decimal
	BasePrice    decimal.Decimal
	Multiplier   decimal.Decimal
	TotalPrice   decimal.Decimal
	PricePerDay  decimal.Decimal
	PricePerView decimal.Decimal

	Tiers     []TierUsage
	ReachTier string
	Policy    string
}

// DisplayTotal is the total rounded to cents.
func (q PriceQuote) DisplayTotal() decimal.Decimal {
	return q.TotalPrice.Round(2)
}
