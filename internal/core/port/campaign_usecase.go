package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"promo-boost/internal/core/domain"
)

// CampaignUseCase defines the business operations exposed by the promo
// service. This interface represents the primary port into the application
// domain.
type CampaignUseCase interface {
	// Quote prices a campaign request without persisting anything. It is
	// called on every change in the campaign builder.
	Quote(ctx context.Context, req domain.CampaignRequest) (domain.PriceQuote, error)

	// CreateCampaign prices the request exactly once and stores the
	// resulting total as the campaign's immutable pricing.
	CreateCampaign(ctx context.Context, in CreateCampaignInput) (*domain.Campaign, error)

	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context, filter CampaignFilter) ([]domain.Campaign, error)

	// ReviewCampaign approves or rejects a pending campaign.
	ReviewCampaign(ctx context.Context, id uuid.UUID, in ReviewInput) (*domain.Campaign, error)
	// RecordPayment stores the payment outcome.
	RecordPayment(ctx context.Context, id uuid.UUID, payment Payment) (*domain.Campaign, error)
	// ActivateCampaign starts serving an approved and paid campaign.
	ActivateCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// CompleteExpired closes campaigns whose serving window has ended.
	CompleteExpired(ctx context.Context) (int64, error)

	// ListActiveAds returns ads currently eligible for display.
	ListActiveAds(ctx context.Context, limit int) ([]domain.Campaign, error)
	RecordImpression(ctx context.Context, id uuid.UUID) error
	RecordClick(ctx context.Context, id uuid.UUID) error

	GetStats(ctx context.Context) (*StatsResp, error)
}

// CreateCampaignInput carries everything a school submits for a campaign.
// ExpectedPrice is the total the builder displayed; when set, submission
// fails with domain.ErrQuoteMismatch if the engine now prices the request
// differently at cent precision.
type CreateCampaignInput struct {
	SchoolID      uuid.UUID
	SchoolType    string
	AdType        string
	Content       string
	FileURL       string
	Request       domain.CampaignRequest
	ExpectedPrice *decimal.Decimal
}

// ReviewInput is an admin decision.
type ReviewInput struct {
	Approve    bool
	ReviewedBy string
	Notes      string
}

// StatsResp contains aggregated campaign counts, events and revenue.
// Revenue sums the pricing of paid campaigns.
type StatsResp struct {
	ByStatus    map[domain.CampaignStatus]int64
	Impressions int64
	Clicks      int64
	Revenue     decimal.Decimal
}
