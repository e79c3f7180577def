package pipeline

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plan-migrate/core/types"
)

func coupon(id string, percentOff float64, duration types.CouponDuration) types.Coupon {
	pct := decimal.NewFromFloat(percentOff)
	return types.Coupon{ID: id, PercentOff: &pct, Duration: duration}
}

func TestSummarizeRevenueNoDiscounts(t *testing.T) {
	items := []types.SubscriptionItem{
		{CustomerID: "cus_1", MRRCents: decimal.NewFromInt(5000), Quantity: 2, Interval: "month", IntervalCount: 1},
	}

	summaries := summarizeRevenue(items, nil)
	require.Contains(t, summaries, "cus_1")

	s := summaries["cus_1"]
	assert.True(t, s.currentMRR.Equal(decimal.NewFromInt(100)), "got %s", s.currentMRR)
	assert.True(t, s.currentARR.Equal(decimal.NewFromInt(1200)))
	assert.Equal(t, int64(0), s.discountPct)
	assert.Equal(t, "0 (0)", s.annotation)
	assert.Equal(t, "month", s.interval)
}

func TestSummarizeRevenueItemAndSubscriptionDiscountsCompose(t *testing.T) {
	coupons := map[string]types.Coupon{
		"HALF": coupon("HALF", 50, types.DurationForever),
		"TEN":  coupon("TEN", 10, types.DurationForever),
	}
	items := []types.SubscriptionItem{
		{
			CustomerID:            "cus_1",
			MRRCents:              decimal.NewFromInt(10000),
			Quantity:              1,
			Interval:              "month",
			IntervalCount:         1,
			Discounts:             []string{"HALF"},
			SubscriptionDiscounts: []string{"TEN"},
		},
	}

	s := summarizeRevenue(items, coupons)["cus_1"]

	// 10000 cents -> 50% item discount -> 10% subscription discount = 4500
	assert.True(t, s.currentMRR.Equal(decimal.NewFromInt(45)), "got %s", s.currentMRR)
	assert.Equal(t, int64(55), s.discountPct)
	assert.Equal(t, "2 (2)", s.annotation)
}

func TestSummarizeRevenueSubscriptionDiscountAppliedOnce(t *testing.T) {
	coupons := map[string]types.Coupon{
		"TEN": coupon("TEN", 10, types.DurationForever),
	}
	// Two items sharing the same subscription-level discount: the
	// multiplier applies to each item's charge, the count only once
	items := []types.SubscriptionItem{
		{CustomerID: "cus_1", MRRCents: decimal.NewFromInt(1000), Quantity: 1, Interval: "month", IntervalCount: 1, SubscriptionDiscounts: []string{"TEN"}},
		{CustomerID: "cus_1", MRRCents: decimal.NewFromInt(3000), Quantity: 1, Interval: "month", IntervalCount: 1, SubscriptionDiscounts: []string{"TEN"}},
	}

	s := summarizeRevenue(items, coupons)["cus_1"]

	// (1000 + 3000) * 0.9 = 3600 cents
	assert.True(t, s.currentMRR.Equal(decimal.NewFromInt(36)), "got %s", s.currentMRR)
	assert.Equal(t, "1 (1)", s.annotation)
	assert.Equal(t, int64(10), s.discountPct)
}

func TestSummarizeRevenueShortCouponCountsOnly(t *testing.T) {
	six := int64(6)
	pct := decimal.NewFromInt(30)
	coupons := map[string]types.Coupon{
		"SIX": {ID: "SIX", PercentOff: &pct, Duration: types.DurationRepeating, DurationInMonths: &six},
	}
	items := []types.SubscriptionItem{
		{CustomerID: "cus_1", MRRCents: decimal.NewFromInt(10000), Quantity: 1, Interval: "month", IntervalCount: 1, Discounts: []string{"SIX"}},
	}

	s := summarizeRevenue(items, coupons)["cus_1"]

	assert.True(t, s.currentMRR.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "0 (1)", s.annotation)
	assert.Equal(t, int64(0), s.discountPct)
}

func TestSummarizeRevenueZeroBase(t *testing.T) {
	items := []types.SubscriptionItem{
		{CustomerID: "cus_1", MRRCents: decimal.Zero, Quantity: 1, Interval: "month", IntervalCount: 1},
	}

	s := summarizeRevenue(items, nil)["cus_1"]

	assert.True(t, s.currentMRR.IsZero())
	assert.Equal(t, int64(0), s.discountPct)
}

func TestMainIntervalUsesHighestRevenueItem(t *testing.T) {
	items := []types.SubscriptionItem{
		{CustomerID: "cus_1", MRRCents: decimal.NewFromInt(100), Quantity: 1, Interval: "month", IntervalCount: 1},
		{CustomerID: "cus_1", MRRCents: decimal.NewFromInt(900), Quantity: 1, Interval: "year", IntervalCount: 1},
	}

	s := summarizeRevenue(items, nil)["cus_1"]
	assert.Equal(t, "year", s.interval)
}

func TestMainIntervalRendersMultiPeriod(t *testing.T) {
	items := []types.SubscriptionItem{
		{CustomerID: "cus_1", MRRCents: decimal.NewFromInt(100), Quantity: 1, Interval: "month", IntervalCount: 3},
	}

	s := summarizeRevenue(items, nil)["cus_1"]
	assert.Equal(t, "month (3)", s.interval)
}
