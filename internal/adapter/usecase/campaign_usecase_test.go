package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/port"
	"promo-boost/internal/core/port/mocks"
	"promo-boost/internal/core/pricing"
)

var fixedNow = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T) (*CampaignUseCase, *mocks.MockCampaignRepository) {
	repo := mocks.NewMockCampaignRepository(t)
	u := NewCampaignUseCase(repo, pricing.NewDefaultCalculator(), Limits{MaxReach: 100000, MaxDuration: 365})
	u.now = func() time.Time { return fixedNow }
	return u, repo
}

func validInput() port.CreateCampaignInput {
	return port.CreateCampaignInput{
		SchoolID:   uuid.New(),
		SchoolType: "manual",
		AdType:     "banner",
		Content:    " Enrol now for the new term ",
		Request: domain.CampaignRequest{
			ReachCount:   500,
			DurationDays: 14,
			TargetAudience: domain.TargetAudience{
				County:      "Montserrado",
				Professions: []string{"parent", "teacher", "parent"},
			},
		},
	}
}

func TestQuoteAppliesLimits(t *testing.T) {
	u, _ := newTestUseCase(t)

	q, err := u.Quote(context.Background(), domain.CampaignRequest{ReachCount: 10000, DurationDays: 1})
	require.NoError(t, err)
	assert.Equal(t, "484.00", q.DisplayTotal().StringFixed(2))

	_, err = u.Quote(context.Background(), domain.CampaignRequest{ReachCount: 100001, DurationDays: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = u.Quote(context.Background(), domain.CampaignRequest{ReachCount: 10, DurationDays: 366})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	_, err = u.Quote(context.Background(), domain.CampaignRequest{ReachCount: 0, DurationDays: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

// TestCreateCampaignPersistsQuote ensures the stored pricing is the total
// of the single quote computed at submission.
func TestCreateCampaignPersistsQuote(t *testing.T) {
	u, repo := newTestUseCase(t)
	in := validInput()

	want, err := pricing.NewDefaultCalculator().Quote(in.Request)
	require.NoError(t, err)

	var stored *domain.Campaign
	repo.EXPECT().
		CreateCampaign(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) { stored = c }).
		Return(nil)

	c, err := u.CreateCampaign(context.Background(), in)
	require.NoError(t, err)
	require.Same(t, stored, c)

	assert.True(t, want.TotalPrice.Equal(c.Pricing))
	assert.Equal(t, pricing.PolicyVersion, c.PricingPolicy)
	assert.Equal(t, domain.StatusPending, c.Status)
	assert.Equal(t, domain.PaymentPending, c.PaymentStatus)
	assert.Equal(t, "Enrol now for the new term", c.Content)
	assert.Equal(t, []string{"parent", "teacher"}, c.TargetAudience.Professions)
	assert.Equal(t, fixedNow, c.CreatedAt)
	assert.NotEqual(t, uuid.Nil, c.ID)
}

func TestCreateCampaignExpectedPrice(t *testing.T) {
	u, repo := newTestUseCase(t)
	in := validInput()

	// 500 views = 42.00, 14 days = 24.00, county and profession = x1.38.
	shown := decimal.RequireFromString("91.08")
	in.ExpectedPrice = &shown
	repo.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(nil).Once()

	c, err := u.CreateCampaign(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "91.08", c.Pricing.StringFixed(2))

	stale := decimal.RequireFromString("85.50")
	in.ExpectedPrice = &stale
	_, err = u.CreateCampaign(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrQuoteMismatch)
}

func TestCreateCampaignRejectsInvalidInput(t *testing.T) {
	u, _ := newTestUseCase(t)

	cases := map[string]func(*port.CreateCampaignInput){
		"school_id":     func(in *port.CreateCampaignInput) { in.SchoolID = uuid.Nil },
		"school_type":   func(in *port.CreateCampaignInput) { in.SchoolType = "public" },
		"ad_type":       func(in *port.CreateCampaignInput) { in.AdType = "popup" },
		"ad_content":    func(in *port.CreateCampaignInput) { in.Content = "   " },
		"reach_count":   func(in *port.CreateCampaignInput) { in.Request.ReachCount = 0 },
		"duration_days": func(in *port.CreateCampaignInput) { in.Request.DurationDays = -2 },
	}
	for field, mutate := range cases {
		t.Run(field, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := u.CreateCampaign(context.Background(), in)
			require.ErrorIs(t, err, domain.ErrInvalidRequest)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, field, verr.Field)
		})
	}
}

func TestCreateCampaignRepositoryError(t *testing.T) {
	u, repo := newTestUseCase(t)
	boom := errors.New("connection reset")
	repo.EXPECT().CreateCampaign(mock.Anything, mock.Anything).Return(boom)

	_, err := u.CreateCampaign(context.Background(), validInput())
	assert.ErrorIs(t, err, boom)
}

func TestReviewCampaign(t *testing.T) {
	u, repo := newTestUseCase(t)
	id := uuid.New()

	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusPending}, nil).Once()
	repo.EXPECT().UpdateReview(mock.Anything, id, port.Review{
		Status:     domain.StatusApproved,
		ReviewedBy: "admin@dsvi.org",
		Notes:      "looks good",
		ReviewedAt: fixedNow,
	}).Return(nil)
	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusApproved}, nil).Once()

	c, err := u.ReviewCampaign(context.Background(), id, port.ReviewInput{
		Approve: true, ReviewedBy: " admin@dsvi.org ", Notes: "looks good",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, c.Status)
}

func TestReviewCampaignNotPending(t *testing.T) {
	u, repo := newTestUseCase(t)
	id := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusActive}, nil)

	_, err := u.ReviewCampaign(context.Background(), id, port.ReviewInput{ReviewedBy: "admin"})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = u.ReviewCampaign(context.Background(), id, port.ReviewInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestRecordPayment(t *testing.T) {
	u, repo := newTestUseCase(t)
	id := uuid.New()

	_, err := u.RecordPayment(context.Background(), id, port.Payment{Status: domain.PaymentPaid})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)

	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusApproved, PaymentStatus: domain.PaymentPending}, nil).Once()
	repo.EXPECT().UpdatePayment(mock.Anything, id, port.Payment{Status: domain.PaymentPaid, Reference: "MM-1234"}).Return(nil)
	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusApproved, PaymentStatus: domain.PaymentPaid}, nil).Once()

	c, err := u.RecordPayment(context.Background(), id, port.Payment{Status: domain.PaymentPaid, Reference: " MM-1234 "})
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, c.PaymentStatus)
}

func TestRecordPaymentTwice(t *testing.T) {
	u, repo := newTestUseCase(t)
	id := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusApproved, PaymentStatus: domain.PaymentPaid}, nil)

	_, err := u.RecordPayment(context.Background(), id, port.Payment{Status: domain.PaymentFailed})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestActivateCampaign(t *testing.T) {
	u, repo := newTestUseCase(t)
	id := uuid.New()
	expires := fixedNow.AddDate(0, 0, 14)

	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, DurationDays: 14, Status: domain.StatusApproved, PaymentStatus: domain.PaymentPaid}, nil).Once()
	repo.EXPECT().Activate(mock.Anything, id, expires).Return(nil)
	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, DurationDays: 14, Status: domain.StatusActive, ExpiresAt: &expires}, nil).Once()

	c, err := u.ActivateCampaign(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, c.Serving(fixedNow))
	assert.False(t, c.Serving(expires))
}

func TestActivateRequiresPayment(t *testing.T) {
	u, repo := newTestUseCase(t)
	id := uuid.New()
	repo.EXPECT().GetCampaign(mock.Anything, id).
		Return(&domain.Campaign{ID: id, Status: domain.StatusApproved, PaymentStatus: domain.PaymentPending}, nil)

	_, err := u.ActivateCampaign(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestActiveAdsLimit(t *testing.T) {
	u, repo := newTestUseCase(t)
	repo.EXPECT().ListServing(mock.Anything, fixedNow, defaultActiveAds).Return(nil, nil).Once()
	repo.EXPECT().ListServing(mock.Anything, fixedNow, maxActiveAds).Return(nil, nil).Once()

	_, err := u.ListActiveAds(context.Background(), 0)
	require.NoError(t, err)
	_, err = u.ListActiveAds(context.Background(), 500)
	require.NoError(t, err)
}

// TestConcurrentTracking ensures concurrent impressions are all forwarded
// to the repository.
func TestConcurrentTracking(t *testing.T) {
	u, repo := newTestUseCase(t)
	id := uuid.New()

	var (
		mu          sync.Mutex
		impressions int
	)
	repo.EXPECT().
		IncrementEvent(mock.Anything, id, port.EventImpression, fixedNow).
		Run(func(context.Context, uuid.UUID, port.EventKind, time.Time) {
			mu.Lock()
			defer mu.Unlock()
			impressions++
		}).
		Return(nil)
	repo.EXPECT().IncrementEvent(mock.Anything, id, port.EventClick, fixedNow).Return(nil).Once()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = u.RecordImpression(context.Background(), id)
		}()
	}
	wg.Wait()
	require.NoError(t, u.RecordClick(context.Background(), id))

	assert.Equal(t, 10, impressions)
}
