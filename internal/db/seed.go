package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/port"
)

// seedSchool is the owner of every demo campaign so reseeding is easy to
// spot and clean up.
var seedSchool = uuid.MustParse("5eed0000-0000-4000-8000-000000000001")

var seedRequests = []struct {
	adType   string
	content  string
	request  domain.CampaignRequest
	approve  bool
	activate bool
}{
	{"banner", "Open day this Saturday", domain.CampaignRequest{
		ReachCount: 500, DurationDays: 14,
		TargetAudience: domain.TargetAudience{County: "Montserrado", EducationLevels: []string{"secondary"}},
	}, true, true},
	{"text", "Scholarships for new students", domain.CampaignRequest{
		ReachCount: 250, DurationDays: 7,
		TargetAudience: domain.TargetAudience{Professions: []string{"parent"}},
	}, true, false},
	{"video", "Tour our science labs", domain.CampaignRequest{
		ReachCount: 1000, DurationDays: 30,
		TargetAudience: domain.TargetAudience{County: "Nimba", City: "Ganta"},
	}, false, false},
}

// Seed creates demo campaigns through the usecase so every stored price
// comes from the pricing engine. It returns the number of campaigns created.
func Seed(ctx context.Context, svc port.CampaignUseCase) (int, error) {
	for i, s := range seedRequests {
		c, err := svc.CreateCampaign(ctx, port.CreateCampaignInput{
			SchoolID:   seedSchool,
			SchoolType: "manual",
			AdType:     s.adType,
			Content:    s.content,
			Request:    s.request,
		})
		if err != nil {
			return i, fmt.Errorf("seed campaign %d: %w", i, err)
		}
		if !s.approve {
			continue
		}
		if _, err = svc.ReviewCampaign(ctx, c.ID, port.ReviewInput{Approve: true, ReviewedBy: "seed"}); err != nil {
			return i, err
		}
		if !s.activate {
			continue
		}
		if _, err = svc.RecordPayment(ctx, c.ID, port.Payment{Status: domain.PaymentPaid, Reference: fmt.Sprintf("SEED-%d", i+1)}); err != nil {
			return i, err
		}
		if _, err = svc.ActivateCampaign(ctx, c.ID); err != nil {
			return i, err
		}
	}
	return len(seedRequests), nil
}
