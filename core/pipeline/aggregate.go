// Package pipeline - Per-account feature aggregation
package pipeline

import (
	"strconv"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"plan-migrate/core/types"
	"plan-migrate/ingest"
)

// accountFeatures is the fully-joined feature row for one account,
// ready for scenario computation
type accountFeatures struct {
	company         types.Company
	orgCount        int
	hfOrgCount      int
	promptUsage     int64
	creditsUsage    decimal.Decimal
	creditsCapacity decimal.Decimal
	promptCapacity  int64
	revenue         revenueSummary
}

// orgStats aggregates an account's organizations
type orgStats struct {
	count           int
	hfCount         int
	promptUsage     int64
	creditsUsage    decimal.Decimal
	creditsCapacity decimal.Decimal
}

// summarizeOrganizations folds organizations into per-company statistics
func (p *Pipeline) summarizeOrganizations(orgs []types.Organization) map[string]orgStats {
	byCompany := lo.GroupBy(orgs, func(o types.Organization) string {
		return o.CompanyID
	})

	stats := make(map[string]orgStats, len(byCompany))
	for companyID, companyOrgs := range byCompany {
		s := orgStats{
			creditsUsage:    decimal.Zero,
			creditsCapacity: decimal.Zero,
		}
		for _, org := range companyOrgs {
			s.count++
			if org.HighFrequency() {
				s.hfCount++
			}
			s.promptUsage += org.PromptsCount
			s.creditsUsage = s.creditsUsage.Add(p.calc.Usage(org))
			s.creditsCapacity = s.creditsCapacity.Add(p.calc.Capacity(org))
		}
		stats[companyID] = s
	}
	return stats
}

// summarizePromptCapacity computes each customer's prompt capacity from
// workspace subscription items: item -> price -> product, taking the
// product's prompt limit times the item quantity. Items that do not
// resolve to a workspace product contribute nothing.
func summarizePromptCapacity(snap *ingest.Snapshot) map[string]int64 {
	capacity := make(map[string]int64)
	for _, item := range snap.SubscriptionItems {
		price, ok := snap.Prices[item.PlanID]
		if !ok {
			continue
		}
		product, ok := snap.Products[price.Product]
		if !ok || !product.IsWorkspace() {
			continue
		}
		capacity[item.CustomerID] += productPromptLimit(product) * item.Quantity
	}
	return capacity
}

// productPromptLimit parses the promptLimit metadata field; malformed or
// missing values count as zero
func productPromptLimit(product types.Product) int64 {
	raw, ok := product.Metadata["promptLimit"]
	if !ok {
		return 0
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return limit
}

// assembleFeatures joins the snapshot into one feature row per account.
// Accounts without organizations or without a revenue record are dropped,
// mirroring the inner joins of the source pipeline; missing prompt
// capacity fills as zero.
func (p *Pipeline) assembleFeatures(snap *ingest.Snapshot) []accountFeatures {
	orgStatsByCompany := p.summarizeOrganizations(snap.Organizations)
	revenueByCustomer := summarizeRevenue(snap.SubscriptionItems, snap.Coupons)
	capacityByCustomer := summarizePromptCapacity(snap)

	features := make([]accountFeatures, 0, len(snap.Companies))
	for _, company := range snap.Companies {
		stats, ok := orgStatsByCompany[company.ID]
		if !ok {
			continue
		}
		revenue, ok := revenueByCustomer[company.StripeCustomerID]
		if !ok {
			continue
		}
		features = append(features, accountFeatures{
			company:         company,
			orgCount:        stats.count,
			hfOrgCount:      stats.hfCount,
			promptUsage:     stats.promptUsage,
			creditsUsage:    stats.creditsUsage,
			creditsCapacity: stats.creditsCapacity,
			promptCapacity:  capacityByCustomer[company.StripeCustomerID],
			revenue:         revenue,
		})
	}
	return features
}
