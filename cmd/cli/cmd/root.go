// Package cmd provides the CLI commands for plan-migrate.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"plan-migrate/internal/config"
	"plan-migrate/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "plan-migrate",
	Short: "Compute plan migration scenarios for subscription accounts",
	Long: `plan-migrate is a one-shot batch tool that computes, for every billable
account in an input snapshot, the cheapest applicable pricing plan for its
credit requirement and an alternative plan matching its current recurring
revenue, then writes one consolidated CSV row per account.

Examples:
  plan-migrate migrate --data ./data --output ./data/migrate.csv
  plan-migrate migrate --catalog 2025-06 --schema v1
  plan-migrate catalog --revision 2025-07`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.plan-migrate.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("plan-migrate version 0.1.0")
	},
}
