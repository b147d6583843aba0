package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the review/serving state of a directory ad.
type CampaignStatus string

const (
	StatusPending   CampaignStatus = "pending"
	StatusApproved  CampaignStatus = "approved"
	StatusActive    CampaignStatus = "active"
	StatusCompleted CampaignStatus = "completed"
	StatusRejected  CampaignStatus = "rejected"
)

// PaymentStatus tracks settlement of the campaign price.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Campaign is a promotional ad bought by a school.
// Pricing is copied from the quote computed at submission and never
// recomputed afterwards, even if the pricing policy changes.
type Campaign struct {
	ID               uuid.UUID
	SchoolID         uuid.UUID
	SchoolType       string // dsvi, manual
	AdType           string // banner, text, video
	Content          string
	FileURL          string
	TargetAudience   TargetAudience
	ReachCount       int
	DurationDays     int
	Pricing          decimal.Decimal
	PricingPolicy    string
	Status           CampaignStatus
	PaymentStatus    PaymentStatus
	PaymentReference string
	Impressions      int64
	Clicks           int64
	ReviewedBy       string
	ReviewedAt       *time.Time
	AdminNotes       string
	ExpiresAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Serving reports whether the ad may be shown at t.
func (c *Campaign) Serving(t time.Time) bool {
	return c.Status == StatusActive && c.ExpiresAt != nil && t.Before(*c.ExpiresAt)
}
