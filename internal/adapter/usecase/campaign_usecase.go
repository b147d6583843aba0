package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/port"
	"promo-boost/internal/core/pricing"
)

const (
	defaultActiveAds = 10
	maxActiveAds     = 50
)

// Limits are the bounds the campaign builder accepts. They are enforced
// before the calculator, which itself only rejects non-positive values.
// Zero disables a bound.
type Limits struct {
	MaxReach    int
	MaxDuration int
}

// CampaignUseCase provides business logic for quoting, creating and
// running promotional campaigns. It orchestrates the pricing engine and the
// repository to implement port.CampaignUseCase.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	calc   *pricing.Calculator
	limits Limits

	// now is the clock used for review, activation and expiry. Pricing
	// never reads it.
	now func() time.Time
}

var _ port.CampaignUseCase = (*CampaignUseCase)(nil)

// NewCampaignUseCase creates a new usecase with the provided repository,
// calculator and limits.
func NewCampaignUseCase(repo port.CampaignRepository, calc *pricing.Calculator, limits Limits) *CampaignUseCase {
	return &CampaignUseCase{
		repo:   repo,
		calc:   calc,
		limits: limits,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Quote prices a request after checking the builder bounds. Nothing is
// cached; each call recomputes from the current policy.
func (u *CampaignUseCase) Quote(_ context.Context, req domain.CampaignRequest) (domain.PriceQuote, error) {
	if err := u.checkLimits(req); err != nil {
		return domain.PriceQuote{}, err
	}
	return u.calc.Quote(req)
}

// CreateCampaign validates the submission, computes exactly one quote and
// persists its total as the campaign pricing. When the caller supplies the
// price it displayed, the two must agree to the cent.
func (u *CampaignUseCase) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) (*domain.Campaign, error) {
	if err := validateSubmission(in); err != nil {
		return nil, err
	}
	quote, err := u.Quote(ctx, in.Request)
	if err != nil {
		return nil, err
	}
	if in.ExpectedPrice != nil && !in.ExpectedPrice.Round(2).Equal(quote.DisplayTotal()) {
		return nil, fmt.Errorf("%w: displayed %s, current %s",
			domain.ErrQuoteMismatch, in.ExpectedPrice.StringFixed(2), quote.DisplayTotal().StringFixed(2))
	}

	now := u.now()
	c := &domain.Campaign{
		ID:             uuid.New(),
		SchoolID:       in.SchoolID,
		SchoolType:     in.SchoolType,
		AdType:         in.AdType,
		Content:        strings.TrimSpace(in.Content),
		FileURL:        strings.TrimSpace(in.FileURL),
		TargetAudience: in.Request.TargetAudience.Normalize(),
		ReachCount:     in.Request.ReachCount,
		DurationDays:   in.Request.DurationDays,
		Pricing:        quote.TotalPrice,
		PricingPolicy:  quote.Policy,
		Status:         domain.StatusPending,
		PaymentStatus:  domain.PaymentPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err = u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// GetCampaign returns a campaign by id.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	return u.repo.GetCampaign(ctx, id)
}

// ListCampaigns returns campaigns matching filter.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	return u.repo.ListCampaigns(ctx, filter)
}

// ReviewCampaign approves or rejects a pending campaign.
func (u *CampaignUseCase) ReviewCampaign(ctx context.Context, id uuid.UUID, in port.ReviewInput) (*domain.Campaign, error) {
	reviewer := strings.TrimSpace(in.ReviewedBy)
	if reviewer == "" {
		return nil, &domain.ValidationError{Field: "reviewed_by", Reason: "is required"}
	}
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusPending {
		return nil, fmt.Errorf("%w: review from %s", domain.ErrInvalidTransition, c.Status)
	}

	status := domain.StatusRejected
	if in.Approve {
		status = domain.StatusApproved
	}
	err = u.repo.UpdateReview(ctx, id, port.Review{
		Status:     status,
		ReviewedBy: reviewer,
		Notes:      strings.TrimSpace(in.Notes),
		ReviewedAt: u.now(),
	})
	if err != nil {
		return nil, err
	}
	return u.repo.GetCampaign(ctx, id)
}

// RecordPayment stores a paid or failed settlement for a campaign whose
// payment is still pending. Rejected campaigns cannot be paid.
func (u *CampaignUseCase) RecordPayment(ctx context.Context, id uuid.UUID, payment port.Payment) (*domain.Campaign, error) {
	if payment.Status != domain.PaymentPaid && payment.Status != domain.PaymentFailed {
		return nil, &domain.ValidationError{Field: "status", Reason: "must be paid or failed"}
	}
	if payment.Status == domain.PaymentPaid && strings.TrimSpace(payment.Reference) == "" {
		return nil, &domain.ValidationError{Field: "reference", Reason: "is required for a paid campaign"}
	}
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.PaymentStatus != domain.PaymentPending || c.Status == domain.StatusRejected {
		return nil, fmt.Errorf("%w: payment %s on %s campaign", domain.ErrInvalidTransition, c.PaymentStatus, c.Status)
	}
	payment.Reference = strings.TrimSpace(payment.Reference)
	if err = u.repo.UpdatePayment(ctx, id, payment); err != nil {
		return nil, err
	}
	return u.repo.GetCampaign(ctx, id)
}

// ActivateCampaign starts serving an approved and paid campaign for its
// booked number of days.
func (u *CampaignUseCase) ActivateCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Status != domain.StatusApproved || c.PaymentStatus != domain.PaymentPaid {
		return nil, fmt.Errorf("%w: activate %s campaign with %s payment",
			domain.ErrInvalidTransition, c.Status, c.PaymentStatus)
	}
	expiresAt := u.now().AddDate(0, 0, c.DurationDays)
	if err = u.repo.Activate(ctx, id, expiresAt); err != nil {
		return nil, err
	}
	return u.repo.GetCampaign(ctx, id)
}

// CompleteExpired marks campaigns past their serving window as completed.
func (u *CampaignUseCase) CompleteExpired(ctx context.Context) (int64, error) {
	return u.repo.CompleteExpired(ctx, u.now())
}

// ListActiveAds returns up to limit serving ads, newest first.
func (u *CampaignUseCase) ListActiveAds(ctx context.Context, limit int) ([]domain.Campaign, error) {
	if limit <= 0 {
		limit = defaultActiveAds
	}
	limit = min(limit, maxActiveAds)
	return u.repo.ListServing(ctx, u.now(), limit)
}

// RecordImpression counts one display of a serving ad.
func (u *CampaignUseCase) RecordImpression(ctx context.Context, id uuid.UUID) error {
	return u.repo.IncrementEvent(ctx, id, port.EventImpression, u.now())
}

// RecordClick counts one click on a serving ad.
func (u *CampaignUseCase) RecordClick(ctx context.Context, id uuid.UUID) error {
	return u.repo.IncrementEvent(ctx, id, port.EventClick, u.now())
}

// GetStats returns aggregated campaign statistics.
func (u *CampaignUseCase) GetStats(ctx context.Context) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx)
}

func (u *CampaignUseCase) checkLimits(req domain.CampaignRequest) error {
	if u.limits.MaxReach > 0 && req.ReachCount > u.limits.MaxReach {
		return &domain.ValidationError{Field: "reach_count", Reason: fmt.Sprintf("must be at most %d", u.limits.MaxReach)}
	}
	if u.limits.MaxDuration > 0 && req.DurationDays > u.limits.MaxDuration {
		return &domain.ValidationError{Field: "duration_days", Reason: fmt.Sprintf("must be at most %d", u.limits.MaxDuration)}
	}
	return nil
}

func validateSubmission(in port.CreateCampaignInput) error {
	if in.SchoolID == uuid.Nil {
		return &domain.ValidationError{Field: "school_id", Reason: "is required"}
	}
	switch in.SchoolType {
	case "dsvi", "manual":
	default:
		return &domain.ValidationError{Field: "school_type", Reason: "must be dsvi or manual"}
	}
	switch in.AdType {
	case "banner", "text", "video":
	default:
		return &domain.ValidationError{Field: "ad_type", Reason: "must be banner, text or video"}
	}
	if strings.TrimSpace(in.Content) == "" {
		return &domain.ValidationError{Field: "ad_content", Reason: "is required"}
	}
	return nil
}
