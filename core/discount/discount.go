// Package discount - Coupon discount multiplier engine
// Folds a list of applied coupons into a single multiplicative factor.
// Only long-term coupons (permanent, or repeating for at least twelve
// months) affect the multiplier; everything else is counted and reported
// but priced as if it had already expired.
package discount

import (
	"github.com/shopspring/decimal"

	"plan-migrate/core/types"
)

// Result is the outcome of folding one coupon list
type Result struct {
	// Multiplier is the factor applied to the base charge, in [0, 1]
	Multiplier decimal.Decimal

	// LongTermCount is the number of coupons that affected the multiplier
	LongTermCount int

	// TotalCount is the number of coupons found in the catalog
	TotalCount int

	// AmountOff is the accumulated absolute discount of long-term coupons.
	// It is reported but not folded into the multiplier: converting an
	// absolute amount into a percentage needs the charge it applies to,
	// which this layer does not see. Callers that want it must apply it
	// themselves.
	AmountOff decimal.Decimal
}

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Identity is the no-discount result
func Identity() Result {
	return Result{Multiplier: one, AmountOff: decimal.Zero}
}

// Apply folds the referenced coupons into a single result. Coupon ids
// missing from the catalog are skipped. Percentages stack additively:
// two 10% coupons take 20% off, not 19%. The multiplier clamps at zero
// for stacks exceeding 100%.
func Apply(couponIDs []string, catalog map[string]types.Coupon) Result {
	result := Identity()
	if len(couponIDs) == 0 {
		return result
	}

	totalPercentOff := decimal.Zero
	for _, id := range couponIDs {
		coupon, ok := catalog[id]
		if !ok {
			continue
		}
		result.TotalCount++

		if !coupon.IsLongTerm() {
			continue
		}
		result.LongTermCount++
		if coupon.PercentOff != nil {
			totalPercentOff = totalPercentOff.Add(*coupon.PercentOff)
		}
		if coupon.AmountOff != nil {
			result.AmountOff = result.AmountOff.Add(*coupon.AmountOff)
		}
	}

	multiplier := one.Sub(totalPercentOff.Div(hundred))
	if multiplier.IsNegative() {
		multiplier = decimal.Zero
	}
	result.Multiplier = multiplier
	return result
}

// Combine merges the counts of an item-level and a subscription-level
// result. Multipliers are not merged here: they compose multiplicatively
// on the charge itself.
func Combine(results ...Result) (longTerm, total int) {
	for _, r := range results {
		longTerm += r.LongTermCount
		total += r.TotalCount
	}
	return longTerm, total
}
