// Package types - Snapshot input records
package types

import (
	"github.com/shopspring/decimal"
)

// Company is an account record from the processed companies snapshot.
// JSON field names follow the source export's camelCase convention.
type Company struct {
	ID                       string  `json:"id"`
	Name                     string  `json:"name"`
	Type                     Segment `json:"type"`
	Domain                   *string `json:"domain"`
	StripeCustomerID         string  `json:"stripeCustomerId"`
	StripeSubscriptionID     string  `json:"stripeSubscriptionId"`
	StripeSubscriptionStatus string  `json:"stripeSubscriptionStatus"`
}

// Billable reports whether the company has an active, linked subscription.
// Only billable companies enter the pipeline.
func (c Company) Billable() bool {
	return c.StripeCustomerID != "" &&
		c.StripeSubscriptionID != "" &&
		c.StripeSubscriptionStatus == "active"
}

// Organization is a workspace record belonging to a company
type Organization struct {
	ID                  string   `json:"id"`
	CompanyID           string   `json:"companyId"`
	ModelIDs            []string `json:"modelIds"`
	PromptLimit         int64    `json:"promptLimit"`
	PromptsCount        int64    `json:"promptsCount"`
	ChatIntervalInHours int64    `json:"chatIntervalInHours"`
}

// HighFrequency reports whether the organization runs more than once a day
func (o Organization) HighFrequency() bool {
	return o.ChatIntervalInHours > 0 && o.ChatIntervalInHours < 24
}

// SubscriptionItem is one line item of a customer's subscription
type SubscriptionItem struct {
	CustomerID            string          `json:"customer_id"`
	PlanID                string          `json:"plan_id"`
	MRRCents              decimal.Decimal `json:"mrr_cents"`
	Quantity              int64           `json:"quantity"`
	Interval              string          `json:"interval"`
	IntervalCount         int64           `json:"interval_count"`
	Discounts             []string        `json:"discounts"`
	SubscriptionDiscounts []string        `json:"subscription_discounts"`
}

// BaseMRRCents is the undiscounted recurring charge for this item
func (s SubscriptionItem) BaseMRRCents() decimal.Decimal {
	return s.MRRCents.Mul(decimal.NewFromInt(s.Quantity))
}

// Coupon is a promotional discount looked up by id from the coupon catalog
type Coupon struct {
	ID               string           `json:"id"`
	PercentOff       *decimal.Decimal `json:"percent_off"`
	AmountOff        *decimal.Decimal `json:"amount_off"`
	Duration         CouponDuration   `json:"duration"`
	DurationInMonths *int64           `json:"duration_in_months"`
}

// IsLongTerm reports whether the coupon is permanent or recurs for at
// least twelve months. Only long-term coupons affect the multiplier.
func (c Coupon) IsLongTerm() bool {
	if c.Duration == DurationForever {
		return true
	}
	return c.Duration == DurationRepeating &&
		c.DurationInMonths != nil &&
		*c.DurationInMonths >= 12
}

// Price links a subscription item's plan to a product
type Price struct {
	ID      string `json:"id"`
	Product string `json:"product"`
}

// Product carries the workspace metadata used for prompt capacity
type Product struct {
	ID       string            `json:"id"`
	Metadata map[string]string `json:"metadata"`
}

// ProductTypeWorkspace marks products whose prompt limit counts toward
// a customer's prompt capacity
const ProductTypeWorkspace = "WORKSPACE"

// IsWorkspace reports whether the product is a workspace product
func (p Product) IsWorkspace() bool {
	return p.Metadata["type"] == ProductTypeWorkspace
}
