package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"promo-boost/internal/core/domain"
	"promo-boost/internal/core/pricing"
)

var quoteOpts struct {
	reach      int
	days       int
	county     string
	city       string
	education  []string
	profession []string
	format     string
}

// quoteCmd prices a campaign without touching the database.
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a campaign request",
	Long: `Compute the price of a campaign with the current pricing policy and
print the breakdown.

Examples:
  promo-boost quote --reach 100 --days 1
  promo-boost quote --reach 2500 --days 30 --county Bong --city Gbarnga
  promo-boost quote --reach 500 --days 14 --profession teacher,parent --format json`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	f := quoteCmd.Flags()
	f.IntVar(&quoteOpts.reach, "reach", 0, "number of views to buy")
	f.IntVar(&quoteOpts.days, "days", 0, "campaign duration in days")
	f.StringVar(&quoteOpts.county, "county", "", "target county")
	f.StringVar(&quoteOpts.city, "city", "", "target city")
	f.StringSliceVar(&quoteOpts.education, "education", nil, "target education levels")
	f.StringSliceVar(&quoteOpts.profession, "profession", nil, "target professions")
	f.StringVarP(&quoteOpts.format, "format", "f", "text", "output format (text, json)")
	_ = quoteCmd.MarkFlagRequired("reach")
	_ = quoteCmd.MarkFlagRequired("days")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	calc := pricing.NewDefaultCalculator()
	q, err := calc.CalculatePrice(quoteOpts.reach, quoteOpts.days, domain.TargetAudience{
		County:          quoteOpts.county,
		City:            quoteOpts.city,
		EducationLevels: quoteOpts.education,
		Professions:     quoteOpts.profession,
	})
	if err != nil {
		return err
	}
	switch quoteOpts.format {
	case "json":
		return writeQuoteJSON(cmd.OutOrStdout(), q)
	case "text":
		return writeQuoteText(cmd.OutOrStdout(), q)
	default:
		return fmt.Errorf("unknown format %q", quoteOpts.format)
	}
}

func writeQuoteText(w io.Writer, q domain.PriceQuote) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Reach\t%d views (%s)\n", q.ReachCount, q.ReachTier)
	fmt.Fprintf(tw, "Duration\t%d days\n", q.DurationDays)
	fmt.Fprintln(tw, "\t")
	for _, t := range q.Tiers {
		fmt.Fprintf(tw, "  %d views @ $%s\t$%s\n", t.Views, t.UnitPrice.StringFixed(2), t.Cost.StringFixed(2))
	}
	fmt.Fprintf(tw, "Reach cost\t$%s\n", q.ReachCost.StringFixed(2))
	fmt.Fprintf(tw, "Duration cost\t$%s\n", q.DurationCost.StringFixed(2))
	fmt.Fprintf(tw, "Base price\t$%s\n", q.BasePrice.StringFixed(2))
	fmt.Fprintf(tw, "Targeting\tx%s\n", q.Multiplier.String())
	fmt.Fprintf(tw, "Total\t$%s\n", q.TotalPrice.StringFixed(2))
	fmt.Fprintf(tw, "Per day\t$%s\n", q.PricePerDay.StringFixed(2))
	fmt.Fprintf(tw, "Per view\t$%s\n", q.PricePerView.StringFixed(3))
	fmt.Fprintf(tw, "Policy\t%s\n", q.Policy)
	return tw.Flush()
}

type quoteJSON struct {
	ReachCount   int    `json:"reach_count"`
	DurationDays int    `json:"duration_days"`
	ReachTier    string `json:"reach_tier"`
	ReachCost    string `json:"reach_cost"`
	DurationCost string `json:"duration_cost"`
	Multiplier   string `json:"multiplier"`
	TotalPrice   string `json:"total_price"`
	PricePerDay  string `json:"price_per_day"`
	PricePerView string `json:"price_per_view"`
	Policy       string `json:"policy"`
}

func writeQuoteJSON(w io.Writer, q domain.PriceQuote) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(quoteJSON{
		ReachCount:   q.ReachCount,
		DurationDays: q.DurationDays,
		ReachTier:    q.ReachTier,
		ReachCost:    q.ReachCost.StringFixed(2),
		DurationCost: q.DurationCost.StringFixed(2),
		Multiplier:   q.Multiplier.String(),
		TotalPrice:   q.TotalPrice.StringFixed(2),
		PricePerDay:  q.PricePerDay.StringFixed(2),
		PricePerView: q.PricePerView.StringFixed(3),
		Policy:       q.Policy,
	})
}
