package pricing

import (
	"github.com/shopspring/decimal"

	"promo-boost/internal/core/domain"
)

const daysPerWeek = 7

var one = decimal.NewFromInt(1)

// Calculator prices campaign requests under a fixed Policy. It holds no
// mutable state and is safe for concurrent use.
type Calculator struct {
	policy Policy
}

// NewCalculator returns a calculator for the given policy.
func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

// NewDefaultCalculator returns a calculator for DefaultPolicy.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultPolicy())
}

// Policy returns the rules this calculator applies.
func (c *Calculator) Policy() Policy {
	return c.policy
}

// CalculatePrice prices reachCount views over durationDays for the given
// audience. Non-positive reach or duration is rejected with an error
// matching domain.ErrInvalidRequest; inputs are never clamped.
func (c *Calculator) CalculatePrice(reachCount, durationDays int, audience domain.TargetAudience) (domain.PriceQuote, error) {
	req := domain.CampaignRequest{ReachCount: reachCount, DurationDays: durationDays, TargetAudience: audience}
	if err := req.Validate(); err != nil {
		return domain.PriceQuote{}, err
	}

	reachCost, tiers := c.ReachCost(reachCount)
	durationCost := c.DurationCost(durationDays)
	base := reachCost.Add(durationCost)
	multiplier := c.Multiplier(audience)
	total := base.Mul(multiplier)

	return domain.PriceQuote{
		ReachCount:   reachCount,
		DurationDays: durationDays,
		ReachCost:    reachCost,
		DurationCost: durationCost,
		BasePrice:    base,
		Multiplier:   multiplier,
		TotalPrice:   total,
		PricePerDay:  total.Div(decimal.NewFromInt(int64(durationDays))),
		PricePerView: total.Div(decimal.NewFromInt(int64(reachCount))),
		Tiers:        tiers,
		ReachTier:    LabelForReach(reachCount).Name,
		Policy:       c.policy.Version,
	}, nil
}

// Quote prices a CampaignRequest.
func (c *Calculator) Quote(req domain.CampaignRequest) (domain.PriceQuote, error) {
	return c.CalculatePrice(req.ReachCount, req.DurationDays, req.TargetAudience)
}

// ReachCost walks the tier schedule, letting each tier consume up to its
// width of the still unpriced reach.
func (c *Calculator) ReachCost(reach int) (decimal.Decimal, []domain.TierUsage) {
	total := decimal.Zero
	usage := make([]domain.TierUsage, 0, len(c.policy.ReachTiers))
	remaining := reach
	previous := 0

	for _, tier := range c.policy.ReachTiers {
		if remaining <= 0 {
			break
		}
		views := remaining
		if tier.UpTo > 0 {
			views = min(remaining, tier.UpTo-previous)
			previous = tier.UpTo
		}
		cost := tier.UnitPrice.Mul(decimal.NewFromInt(int64(views)))
		total = total.Add(cost)
		usage = append(usage, domain.TierUsage{Views: views, UnitPrice: tier.UnitPrice, Cost: cost})
		remaining -= views
	}
	return total, usage
}

// DurationCost charges the weekly rate for every whole week and the daily
// rate for the remaining days.
func (c *Calculator) DurationCost(days int) decimal.Decimal {
	weeks := int64(days / daysPerWeek)
	rest := int64(days % daysPerWeek)
	return c.policy.WeeklyRate.Mul(decimal.NewFromInt(weeks)).
		Add(c.policy.DailyRate.Mul(decimal.NewFromInt(rest)))
}

// Multiplier compounds the premium of every non-empty targeting dimension.
func (c *Calculator) Multiplier(audience domain.TargetAudience) decimal.Decimal {
	a := audience.Normalize()
	m := one
	if a.County != "" {
		m = m.Mul(c.policy.CountyPremium)
	}
	if a.City != "" {
		m = m.Mul(c.policy.CityPremium)
	}
	if len(a.EducationLevels) > 0 {
		m = m.Mul(c.policy.EducationPremium)
	}
	if len(a.Professions) > 0 {
		m = m.Mul(c.policy.ProfessionPremium)
	}
	return m
}
