// Package pricing converts a campaign request into a price quote.
//
// Reach is priced on a marginal tier schedule: each tier prices only the
// views that fall inside it, so the cost per extra view never increases
// with reach. Duration is priced per whole week plus a daily rate for the
// remainder. Targeting premiums compound multiplicatively.
package pricing

import "github.com/shopspring/decimal"

// PolicyVersion identifies the pricing rules recorded on persisted campaigns.
const PolicyVersion = "marginal-v1"

// ReachTier is one step of the marginal reach schedule. UpTo is the
// cumulative reach at which the tier ends, inclusive; zero means unlimited.
type ReachTier struct {
	UpTo      int
	UnitPrice decimal.Decimal
}

// Policy holds every constant the calculator uses.
type Policy struct {
	Version string

	ReachTiers []ReachTier

	WeeklyRate decimal.Decimal
	DailyRate  decimal.Decimal

	CountyPremium     decimal.Decimal
	CityPremium       decimal.Decimal
	EducationPremium  decimal.Decimal
	ProfessionPremium decimal.Decimal
}

// DefaultPolicy returns the current pricing rules.
func DefaultPolicy() Policy {
	return Policy{
		Version: PolicyVersion,
		ReachTiers: []ReachTier{
			{UpTo: 100, UnitPrice: decimal.RequireFromString("0.10")},
			{UpTo: 500, UnitPrice: decimal.RequireFromString("0.08")},
			{UpTo: 2000, UnitPrice: decimal.RequireFromString("0.06")},
			{UpTo: 5000, UnitPrice: decimal.RequireFromString("0.05")},
			{UpTo: 0, UnitPrice: decimal.RequireFromString("0.04")},
		},
		WeeklyRate:        decimal.RequireFromString("12.00"),
		DailyRate:         decimal.RequireFromString("2.00"),
		CountyPremium:     decimal.RequireFromString("1.20"),
		CityPremium:       decimal.RequireFromString("1.50"),
		EducationPremium:  decimal.RequireFromString("1.10"),
		ProfessionPremium: decimal.RequireFromString("1.15"),
	}
}
