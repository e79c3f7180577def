// Package optimizer - Plan selection engine
// Two pure selection strategies over the tier catalog: the cheapest plan
// configuration that covers a credit requirement, and the configuration
// that most closely reconstructs an account's current recurring revenue.
package optimizer

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"plan-migrate/core/catalog"
	"plan-migrate/core/types"
)

// Optimizer selects plan tiers for account profiles. Stateless apart from
// its immutable catalog revision; safe for concurrent use.
type Optimizer struct {
	revision       *catalog.Revision
	enforceCeiling bool
	strictTieBreak bool
}

// Option configures an Optimizer
type Option func(*Optimizer)

// WithSubAccountLimit filters candidate tiers by their sub-account
// ceiling, falling back to the highest-ceiling tier when none qualify
func WithSubAccountLimit() Option {
	return func(o *Optimizer) {
		o.enforceCeiling = true
	}
}

// WithStrictTieBreak breaks equal-cost ties by lexicographically smallest
// tier name instead of catalog order, so results survive catalog
// reordering
func WithStrictTieBreak() Option {
	return func(o *Optimizer) {
		o.strictTieBreak = true
	}
}

// New builds an optimizer over a catalog revision
func New(revision *catalog.Revision, opts ...Option) *Optimizer {
	o := &Optimizer{revision: revision}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// candidates derives the tier set for a segment and sub-account count.
// Never empty: when the ceiling filter removes every tier, the single
// highest-ceiling tier is used instead.
func (o *Optimizer) candidates(segment types.Segment, subAccounts int) []catalog.Tier {
	tiers := o.revision.TiersFor(segment)
	if !o.enforceCeiling {
		return tiers
	}

	eligible := lo.Filter(tiers, func(t catalog.Tier, _ int) bool {
		return t.Supports(subAccounts)
	})
	if len(eligible) > 0 {
		return eligible
	}

	largest := lo.MaxBy(tiers, func(a, b catalog.Tier) bool {
		return a.MaxSubAccounts > b.MaxSubAccounts
	})
	return []catalog.Tier{largest}
}

// overage computes the extra units a tier must sell to cover the
// requirement. Overage is only sold in minimum-sized increments: a
// non-zero shortfall below the floor rounds up to it, never down.
func overage(tier catalog.Tier, requiredUnits decimal.Decimal) decimal.Decimal {
	extra := requiredUnits.Sub(tier.IncludedUnits)
	if extra.IsNegative() {
		return decimal.Zero
	}
	if extra.IsPositive() && extra.LessThan(tier.MinOverageUnits) {
		return tier.MinOverageUnits
	}
	return extra
}

// LeastCost selects the tier configuration with the lowest total cost for
// the profile's credit requirement. Ties go to catalog order unless the
// strict tie-break is enabled.
func (o *Optimizer) LeastCost(profile types.AccountUsageProfile) types.ScenarioResult {
	var best types.ScenarioResult
	found := false

	for _, tier := range o.candidates(profile.Segment, profile.SubAccountCount) {
		extra := overage(tier, profile.RequiredUnits)
		cost := tier.BasePrice.Add(extra.Mul(tier.UnitPrice))

		if found {
			if cost.GreaterThan(best.Cost) {
				continue
			}
			if cost.Equal(best.Cost) && !(o.strictTieBreak && tier.Name < best.PlanName) {
				continue
			}
		}
		found = true
		best = types.ScenarioResult{
			PlanName:     tier.Name,
			Cost:         cost,
			CostDelta:    cost.Sub(profile.CurrentRevenue),
			ExtraUnits:   extra,
			SurplusUnits: tier.IncludedUnits.Add(extra).Sub(profile.RequiredUnits),
		}
	}
	return best
}

// MatchRevenue selects the configuration that approximately reproduces the
// profile's current revenue: the most expensive tier still strictly
// cheaper than current revenue, topped up with enough overage to close the
// gap. When even the cheapest tier exceeds current revenue, that cheapest
// tier is chosen with no overage. The surplus may legitimately be
// negative: this scenario targets revenue parity, not credit sufficiency.
func (o *Optimizer) MatchRevenue(profile types.AccountUsageProfile) types.ScenarioResult {
	candidates := o.candidates(profile.Segment, profile.SubAccountCount)

	suitable := lo.Filter(candidates, func(t catalog.Tier, _ int) bool {
		return t.BasePrice.LessThan(profile.CurrentRevenue)
	})

	var chosen catalog.Tier
	if len(suitable) > 0 {
		chosen = lo.MaxBy(suitable, func(a, b catalog.Tier) bool {
			return a.BasePrice.GreaterThan(b.BasePrice)
		})
	} else {
		chosen = lo.MinBy(candidates, func(a, b catalog.Tier) bool {
			return a.BasePrice.LessThan(b.BasePrice)
		})
	}

	purchased := decimal.Zero
	remainder := profile.CurrentRevenue.Sub(chosen.BasePrice)
	if remainder.IsPositive() {
		// Round up: never under-match the revenue target.
		purchased = remainder.Div(chosen.UnitPrice).Ceil()
	}

	cost := chosen.BasePrice.Add(purchased.Mul(chosen.UnitPrice))
	return types.ScenarioResult{
		PlanName:     chosen.Name,
		Cost:         cost,
		CostDelta:    cost.Sub(profile.CurrentRevenue),
		ExtraUnits:   purchased,
		SurplusUnits: chosen.IncludedUnits.Add(purchased).Sub(profile.RequiredUnits),
	}
}
