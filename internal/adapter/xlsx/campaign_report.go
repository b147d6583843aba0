// Package xlsx renders campaign reports as Excel workbooks.
package xlsx

import (
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"promo-boost/internal/core/domain"
)

// CampaignReportName is the suggested download file name.
const CampaignReportName = "campaigns.xlsx"

const sheet = "Campaigns"

var header = []any{
	"ID", "School ID", "School Type", "Ad Type", "Reach", "Duration (days)",
	"County", "City", "Education Levels", "Professions",
	"Pricing", "Policy", "Status", "Payment", "Payment Reference",
	"Impressions", "Clicks", "Expires At", "Created At",
}

// WriteCampaignReport writes one row per campaign below a header row.
// Pricing is written as a number rounded to cents.
func WriteCampaignReport(w io.Writer, cs []domain.Campaign) error {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := xl.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i := range cs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := campaignRow(&cs[i])
		if err = xl.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return xl.Write(w)
}

func campaignRow(c *domain.Campaign) []any {
	pricing, _ := c.Pricing.Round(2).Float64()
	expires := ""
	if c.ExpiresAt != nil {
		expires = c.ExpiresAt.UTC().Format(time.RFC3339)
	}
	return []any{
		c.ID.String(),
		c.SchoolID.String(),
		c.SchoolType,
		c.AdType,
		c.ReachCount,
		c.DurationDays,
		c.TargetAudience.County,
		c.TargetAudience.City,
		strings.Join(c.TargetAudience.EducationLevels, ", "),
		strings.Join(c.TargetAudience.Professions, ", "),
		pricing,
		c.PricingPolicy,
		string(c.Status),
		string(c.PaymentStatus),
		c.PaymentReference,
		c.Impressions,
		c.Clicks,
		expires,
		c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
