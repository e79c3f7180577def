// Package types defines the typed records flowing through the migration
// pipeline. Every record is constructed once from the input snapshot,
// validated at the ingestion boundary, and never mutated afterwards.
package types

import (
	"github.com/shopspring/decimal"

	"plan-migrate/internal/errors"
)

// Segment is the account category determining which tier catalog applies
type Segment string

const (
	// SegmentSelfManaged is a customer running their own workspaces
	SegmentSelfManaged Segment = "IN_HOUSE"

	// SegmentAgency is an agency managing workspaces for clients
	SegmentAgency Segment = "AGENCY"

	// SegmentUnmanaged appears in later snapshot revisions; it prices
	// against the self-managed catalog
	SegmentUnmanaged Segment = "UNMANAGED"
)

// String returns the string representation
func (s Segment) String() string {
	return string(s)
}

// ParseSegment validates a raw segment value
func ParseSegment(raw string) (Segment, error) {
	switch Segment(raw) {
	case SegmentSelfManaged, SegmentAgency, SegmentUnmanaged:
		return Segment(raw), nil
	default:
		return "", errors.Newf(errors.TypeValidation, "unknown segment %q", raw)
	}
}

// CouponDuration is how long a coupon keeps applying
type CouponDuration string

const (
	// DurationOnce applies to a single invoice
	DurationOnce CouponDuration = "once"

	// DurationRepeating applies for DurationInMonths months
	DurationRepeating CouponDuration = "repeating"

	// DurationForever applies to every invoice
	DurationForever CouponDuration = "forever"
)

// AccountUsageProfile is the per-account feature set consumed by the
// optimizer. Built by the aggregation pipeline, consumed once.
type AccountUsageProfile struct {
	// Segment selects the tier catalog
	Segment Segment

	// SubAccountCount is the number of organizations under the account
	SubAccountCount int

	// RequiredUnits is the credit requirement, possibly fractional
	RequiredUnits decimal.Decimal

	// CurrentRevenue is the pre-migration recurring revenue in whole
	// currency units
	CurrentRevenue decimal.Decimal
}

// ScenarioResult is one plan selection outcome. Monetary and unit figures
// stay exact decimals here; truncation to integers happens only at the
// output boundary.
type ScenarioResult struct {
	// PlanName is the chosen tier name
	PlanName string

	// Cost is the resulting monthly cost
	Cost decimal.Decimal

	// CostDelta is Cost minus the account's current revenue
	CostDelta decimal.Decimal

	// ExtraUnits is the overage purchased on top of the included allotment
	ExtraUnits decimal.Decimal

	// SurplusUnits is total purchased units minus required units; negative
	// when the scenario buys fewer units than required
	SurplusUnits decimal.Decimal
}
