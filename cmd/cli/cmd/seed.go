package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promo-boost/internal/adapter/postgres"
	"promo-boost/internal/adapter/usecase"
	"promo-boost/internal/core/pricing"
	"promo-boost/internal/db"
)

// seedCmd inserts demo campaigns. Prices come from the engine, never from
// fixtures.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo campaigns",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		ctx := cmd.Context()
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("connect: %w", err)
		}
		defer pool.Close()

		svc := usecase.NewCampaignUseCase(
			postgres.NewCampaignRepository(pool),
			pricing.NewDefaultCalculator(),
			usecase.Limits{MaxReach: cfg.Pricing.MaxReach, MaxDuration: cfg.Pricing.MaxDuration},
		)
		n, err := db.Seed(ctx, svc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d campaigns\n", n)
		return nil
	},
}
