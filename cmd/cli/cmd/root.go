// Package cmd provides the CLI commands for promo-boost.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"promo-boost/internal/config"
)

var envFile string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "promo-boost",
	Short: "Price and manage school directory ad campaigns",
	Long: `promo-boost prices promotional campaigns for the school directory and
manages the campaign database.

Examples:
  promo-boost quote --reach 500 --days 14 --county Montserrado
  promo-boost migrate
  promo-boost seed --env-file .env.local`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

// loadConfig reads configuration the same way the server does, honouring
// --env-file.
func loadConfig() (config.Config, error) {
	if envFile != "" {
		if err := os.Setenv("ENV_FILE", envFile); err != nil {
			return config.Config{}, err
		}
	}
	return config.Load()
}
