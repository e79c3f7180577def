// Package pipeline - Per-customer revenue aggregation
package pipeline

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"plan-migrate/core/discount"
	"plan-migrate/core/types"
)

// revenueSummary is the discount-aware recurring revenue of one customer
type revenueSummary struct {
	// currentMRR is the discounted monthly revenue in whole currency units
	currentMRR decimal.Decimal

	// currentARR is 12x the monthly revenue
	currentARR decimal.Decimal

	// discountPct is the effective discount percentage, rounded
	discountPct int64

	// annotation is the "N (M)" discount-count annotation: N long-term
	// discounts applied out of M discounts found
	annotation string

	// interval is the billing interval of the highest-revenue item
	interval string
}

var (
	centsPerUnit  = decimal.NewFromInt(100)
	monthsPerYear = decimal.NewFromInt(12)
	oneHundredPct = decimal.NewFromInt(100)
	decimalOne    = decimal.NewFromInt(1)
)

// summarizeRevenue folds subscription items into one revenue summary per
// customer. Item-level discounts apply per item; the subscription-level
// multiplier is computed once per customer (every item of a subscription
// carries the same subscription discounts) and applied on top, so a
// subscription-wide coupon is never double counted.
func summarizeRevenue(items []types.SubscriptionItem, coupons map[string]types.Coupon) map[string]revenueSummary {
	byCustomer := lo.GroupBy(items, func(item types.SubscriptionItem) string {
		return item.CustomerID
	})

	summaries := make(map[string]revenueSummary, len(byCustomer))
	for customerID, customerItems := range byCustomer {
		subResult := discount.Apply(customerItems[0].SubscriptionDiscounts, coupons)

		baseTotal := decimal.Zero
		discountedTotal := decimal.Zero
		longTerm := subResult.LongTermCount
		total := subResult.TotalCount

		for _, item := range customerItems {
			base := item.BaseMRRCents()
			itemResult := discount.Apply(item.Discounts, coupons)

			baseTotal = baseTotal.Add(base)
			discountedTotal = discountedTotal.Add(
				base.Mul(itemResult.Multiplier).Mul(subResult.Multiplier))
			longTerm += itemResult.LongTermCount
			total += itemResult.TotalCount
		}

		discountPct := int64(0)
		if baseTotal.IsPositive() {
			discountPct = decimalOne.
				Sub(discountedTotal.Div(baseTotal)).
				Mul(oneHundredPct).
				Round(0).
				IntPart()
		}

		mrr := discountedTotal.Div(centsPerUnit)
		summaries[customerID] = revenueSummary{
			currentMRR:  mrr,
			currentARR:  mrr.Mul(monthsPerYear),
			discountPct: discountPct,
			annotation:  fmt.Sprintf("%d (%d)", longTerm, total),
			interval:    mainInterval(customerItems),
		}
	}
	return summaries
}

// mainInterval renders the billing interval of the customer's
// highest-revenue item, e.g. "month" or "month (3)"
func mainInterval(items []types.SubscriptionItem) string {
	main := lo.MaxBy(items, func(a, b types.SubscriptionItem) bool {
		return a.BaseMRRCents().GreaterThan(b.BaseMRRCents())
	})
	if main.IntervalCount != 1 {
		return fmt.Sprintf("%s (%d)", main.Interval, main.IntervalCount)
	}
	return main.Interval
}
