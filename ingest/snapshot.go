// Package ingest loads the day's input snapshot into typed, validated
// records. Everything downstream of this package sees only fully-typed
// values; malformed input aborts the run here with a diagnostic naming
// the offending file, record, and field.
package ingest

import (
	"plan-migrate/core/types"
)

// Snapshot is one day's input data, loaded and validated
type Snapshot struct {
	// Companies are the billable accounts, in source file order
	Companies []types.Company

	// Organizations are the workspaces across all accounts
	Organizations []types.Organization

	// SubscriptionItems are the subscription line items
	SubscriptionItems []types.SubscriptionItem

	// Coupons maps coupon id to its catalog entry
	Coupons map[string]types.Coupon

	// Prices maps price id to its record
	Prices map[string]types.Price

	// Products maps product id to its record
	Products map[string]types.Product
}
