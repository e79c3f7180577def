// Package cmd - migrate command
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"plan-migrate/core/catalog"
	"plan-migrate/core/credits"
	"plan-migrate/core/optimizer"
	"plan-migrate/core/output"
	"plan-migrate/core/pipeline"
	"plan-migrate/ingest"
	"plan-migrate/internal/config"
	"plan-migrate/internal/logging"
)

var (
	dataDir         string
	outputPath      string
	catalogRevision string
	catalogFile     string
	schemaVersion   string
	workers         int
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Compute migration scenarios and write the output CSV",
	Long: `Load the input snapshot, compute the least-cost and match-revenue plan
scenarios for every billable account, and write one CSV row per account.

The computation is deterministic for a fixed snapshot and catalog revision:
output rows follow the source order of the companies file.

Examples:
  plan-migrate migrate
  plan-migrate migrate --data ./data --output ./out/migrate.csv
  plan-migrate migrate --catalog-file pricing.hcl --schema v2`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVarP(&dataDir, "data", "d", "", "snapshot data directory")
	migrateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output CSV path")
	migrateCmd.Flags().StringVarP(&catalogRevision, "catalog", "c", "", "built-in catalog revision name")
	migrateCmd.Flags().StringVar(&catalogFile, "catalog-file", "", "HCL catalog file overriding the built-in revision")
	migrateCmd.Flags().StringVarP(&schemaVersion, "schema", "s", "", "output schema version (v1, v2)")
	migrateCmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel account workers (0 = GOMAXPROCS)")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := config.Get()

	// Flag overrides
	if dataDir != "" {
		cfg.Data.Dir = dataDir
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}
	if catalogRevision != "" {
		cfg.Catalog.Revision = catalogRevision
	}
	if catalogFile != "" {
		cfg.Catalog.File = catalogFile
	}
	if schemaVersion != "" {
		cfg.Output.SchemaVersion = schemaVersion
	}
	if workers > 0 {
		cfg.Workers = workers
	}

	revision, err := resolveCatalog(cfg.Catalog)
	if err != nil {
		return err
	}

	schema, err := output.ParseSchemaVersion(cfg.Output.SchemaVersion)
	if err != nil {
		return err
	}

	var calcOpts []credits.Option
	if cfg.Credits.ModelFrequency {
		calcOpts = append(calcOpts, credits.WithModelFrequency())
	}
	calc := credits.NewCalculator(calcOpts...)

	var optOpts []optimizer.Option
	if cfg.Catalog.EnforceSubAccountLimit {
		optOpts = append(optOpts, optimizer.WithSubAccountLimit())
	}
	if cfg.Catalog.StrictTieBreak {
		optOpts = append(optOpts, optimizer.WithStrictTieBreak())
	}
	opt := optimizer.New(revision, optOpts...)

	logging.Info("starting migration run")
	fmt.Printf("Loading snapshot from %s...\n", cfg.Data.Dir)

	snapshot, err := ingest.NewLoader(cfg.Data).Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	fmt.Printf("Computing scenarios for %d accounts (catalog %s)...\n",
		len(snapshot.Companies), revision.Name)

	result, err := pipeline.New(calc, opt, cfg.Workers).Run(ctx, snapshot)
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	if err := output.WriteCSVFile(cfg.Output.Path, schema, result.Rows); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("Wrote %d rows to %s\n", result.Summary.Accounts, cfg.Output.Path)
	fmt.Printf("Sum of arr_change: %d\n", result.Summary.ARRChangeTotal)
	return nil
}

// resolveCatalog picks the catalog revision: an HCL file when configured,
// otherwise a built-in revision
func resolveCatalog(cfg config.CatalogConfig) (*catalog.Revision, error) {
	if cfg.File != "" {
		return catalog.LoadFile(cfg.File)
	}
	return catalog.Lookup(cfg.Revision)
}
