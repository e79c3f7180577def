// Package cmd - catalog command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"plan-migrate/core/catalog"
	"plan-migrate/core/types"
)

var showRevision string

// catalogCmd prints the tier tables of a catalog revision
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print a plan catalog revision",
	Long: `Print the tier tables of a built-in catalog revision, or of an HCL
catalog file when --catalog-file is given.

Examples:
  plan-migrate catalog
  plan-migrate catalog --revision 2025-06
  plan-migrate catalog --catalog-file pricing.hcl`,
	Args: cobra.NoArgs,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVarP(&showRevision, "revision", "r", "", "built-in revision name (default: configured revision)")
	catalogCmd.Flags().StringVar(&catalogFile, "catalog-file", "", "HCL catalog file to print instead of a built-in revision")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	var (
		revision *catalog.Revision
		err      error
	)
	switch {
	case catalogFile != "":
		revision, err = catalog.LoadFile(catalogFile)
	case showRevision != "":
		revision, err = catalog.Lookup(showRevision)
	default:
		fmt.Printf("Built-in revisions: %v\n\n", catalog.Names())
		revision, err = catalog.Lookup(catalog.Revision202507)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Catalog revision: %s\n", revision.Name)
	printSegment("self-managed", revision.TiersFor(types.SegmentSelfManaged))
	printSegment("agency", revision.TiersFor(types.SegmentAgency))
	return nil
}

func printSegment(label string, tiers []catalog.Tier) {
	fmt.Printf("\n%s:\n", label)
	fmt.Printf("  %-12s %10s %10s %12s %12s %10s\n",
		"TIER", "PRICE", "CREDITS", "UNIT PRICE", "MIN OVERAGE", "MAX ORGS")
	for _, t := range tiers {
		maxOrgs := "-"
		if !t.Unconstrained() {
			maxOrgs = fmt.Sprintf("%d", t.MaxSubAccounts)
		}
		fmt.Printf("  %-12s %10s %10s %12s %12s %10s\n",
			t.Name,
			t.BasePrice.StringFixed(0),
			t.IncludedUnits.StringFixed(0),
			t.UnitPrice.StringFixed(5),
			t.MinOverageUnits.StringFixed(0),
			maxOrgs,
		)
	}
}
