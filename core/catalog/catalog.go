// Package catalog - Versioned plan tier catalog
// The catalog is the source of truth for pricing. Tiers are plain data:
// behavior changes across revisions are data changes, not code changes.
package catalog

import (
	"github.com/shopspring/decimal"

	"plan-migrate/core/types"
	"plan-migrate/internal/errors"
)

// Tier is a named pricing plan with a base price, an included credit
// allotment, and an overage rate
type Tier struct {
	// Name identifies the tier within its segment
	Name string `json:"name"`

	// BasePrice is the monthly price in whole currency units
	BasePrice decimal.Decimal `json:"base_price"`

	// IncludedUnits is the credit allotment included in the base price
	IncludedUnits decimal.Decimal `json:"included_units"`

	// UnitPrice is the per-credit overage rate, derived from
	// BasePrice / IncludedUnits unless explicitly overridden
	UnitPrice decimal.Decimal `json:"unit_price"`

	// MinOverageUnits is the minimum overage purchase size; overage below
	// this floor rounds up to it
	MinOverageUnits decimal.Decimal `json:"min_overage_units"`

	// MaxSubAccounts is the sub-account ceiling; zero means unconstrained
	MaxSubAccounts int `json:"max_sub_accounts,omitempty"`
}

// NewTier builds a tier with the unit price derived from the base price
// and included allotment
func NewTier(name string, basePrice, includedUnits, minOverage int64, maxSubAccounts int) Tier {
	base := decimal.NewFromInt(basePrice)
	included := decimal.NewFromInt(includedUnits)
	return Tier{
		Name:            name,
		BasePrice:       base,
		IncludedUnits:   included,
		UnitPrice:       base.Div(included),
		MinOverageUnits: decimal.NewFromInt(minOverage),
		MaxSubAccounts:  maxSubAccounts,
	}
}

// Unconstrained reports whether the tier has no sub-account ceiling
func (t Tier) Unconstrained() bool {
	return t.MaxSubAccounts <= 0
}

// Supports reports whether the tier can host the given sub-account count
func (t Tier) Supports(subAccounts int) bool {
	return t.Unconstrained() || t.MaxSubAccounts >= subAccounts
}

// Revision is one observed version of the full catalog: an ordered tier
// table per segment. Tier order is significant - it is the documented
// tie-break for equal-cost candidates.
type Revision struct {
	// Name identifies the revision
	Name string `json:"name"`

	// SelfManaged is the tier table for self-managed accounts
	SelfManaged []Tier `json:"self_managed"`

	// Agency is the tier table for agency-managed accounts
	Agency []Tier `json:"agency"`
}

// TiersFor returns the tier table for a segment. The unmanaged segment
// prices against the self-managed table.
func (r *Revision) TiersFor(segment types.Segment) []Tier {
	if segment == types.SegmentAgency {
		return r.Agency
	}
	return r.SelfManaged
}

// Validate checks the catalog invariants: positive prices and allotments,
// unique tier names per segment, at least one tier per segment
func (r *Revision) Validate() error {
	for _, table := range []struct {
		segment string
		tiers   []Tier
	}{
		{"self_managed", r.SelfManaged},
		{"agency", r.Agency},
	} {
		if len(table.tiers) == 0 {
			return errors.Catalog("revision " + r.Name + ": segment " + table.segment + " has no tiers")
		}
		seen := make(map[string]bool, len(table.tiers))
		for _, t := range table.tiers {
			if t.Name == "" {
				return errors.Catalog("revision " + r.Name + ": unnamed tier in segment " + table.segment)
			}
			if seen[t.Name] {
				return errors.Newf(errors.TypeCatalog, "revision %s: duplicate tier %q in segment %s", r.Name, t.Name, table.segment)
			}
			seen[t.Name] = true
			if !t.IncludedUnits.IsPositive() {
				return errors.Newf(errors.TypeCatalog, "revision %s: tier %q has non-positive included units", r.Name, t.Name)
			}
			if !t.UnitPrice.IsPositive() {
				return errors.Newf(errors.TypeCatalog, "revision %s: tier %q has non-positive unit price", r.Name, t.Name)
			}
			if t.MinOverageUnits.IsNegative() {
				return errors.Newf(errors.TypeCatalog, "revision %s: tier %q has negative minimum overage", r.Name, t.Name)
			}
		}
	}
	return nil
}

// Lookup returns a built-in revision by name
func Lookup(name string) (*Revision, error) {
	rev, ok := builtin[name]
	if !ok {
		return nil, errors.NotFound("catalog revision", name)
	}
	return rev, nil
}

// Names lists the built-in revision names, newest first
func Names() []string {
	return []string{Revision202507, Revision202506}
}
