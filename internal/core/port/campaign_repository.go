package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"promo-boost/internal/core/domain"
)

//go:generate mockery --name=CampaignRepository --with-expecter --output=mocks --outpkg=mocks

// CampaignRepository defines the persistence layer for promotional
// campaigns. It is an outbound port in hexagonal architecture.
// Implementations must never change the stored pricing of a campaign after
// it has been created; there is deliberately no method that could.
type CampaignRepository interface {
	// CreateCampaign stores a new campaign, including its final pricing.
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	// GetCampaign returns a campaign by id or domain.ErrCampaignNotFound.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListCampaigns returns campaigns matching the filter, newest first.
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)
	// UpdateReview stores a review decision for a pending campaign. It
	// returns domain.ErrInvalidTransition when the campaign is no longer
	// pending.
	UpdateReview(ctx context.Context, id uuid.UUID, review Review) error
	// UpdatePayment records the payment outcome while payment is pending.
	UpdatePayment(ctx context.Context, id uuid.UUID, payment Payment) error
	// Activate moves an approved, paid campaign to active until expiresAt.
	Activate(ctx context.Context, id uuid.UUID, expiresAt time.Time) error
	// CompleteExpired marks active campaigns expired at now as completed and
	// returns how many were changed.
	CompleteExpired(ctx context.Context, now time.Time) (int64, error)
	// ListServing returns active campaigns that have not expired at now.
	ListServing(ctx context.Context, now time.Time, limit int) ([]domain.Campaign, error)
	// IncrementEvent bumps the impression or click counter of a serving
	// campaign. It returns domain.ErrCampaignNotFound when no serving
	// campaign has that id.
	IncrementEvent(ctx context.Context, id uuid.UUID, event EventKind, now time.Time) error
	// GetStats aggregates counters and revenue over all campaigns.
	GetStats(ctx context.Context) (*StatsResp, error)
}

// CampaignFilter narrows ListCampaigns. Zero fields are ignored.
type CampaignFilter struct {
	SchoolID *uuid.UUID
	Status   domain.CampaignStatus
	Limit    int
}

// Review is an admin decision on a pending campaign.
type Review struct {
	Status     domain.CampaignStatus
	ReviewedBy string
	Notes      string
	ReviewedAt time.Time
}

// Payment is the settlement outcome of a campaign.
type Payment struct {
	Status    domain.PaymentStatus
	Reference string
}

// EventKind selects the tracked counter.
type EventKind string

const (
	EventImpression EventKind = "impression"
	EventClick      EventKind = "click"
)
