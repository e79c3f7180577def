// Package output - Versioned output schema
// The output field set changed across catalog revisions; the schema is
// explicit and versioned so a row diff between runs is always meaningful.
package output

import (
	"strconv"

	"plan-migrate/internal/errors"
)

// SchemaVersion selects the output column set
type SchemaVersion string

const (
	// SchemaV1 carries the least-cost scenario only
	SchemaV1 SchemaVersion = "v1"

	// SchemaV2 adds the match-revenue scenario and the discount-count
	// annotation
	SchemaV2 SchemaVersion = "v2"
)

// ParseSchemaVersion validates a raw schema version value
func ParseSchemaVersion(raw string) (SchemaVersion, error) {
	switch SchemaVersion(raw) {
	case SchemaV1, SchemaV2:
		return SchemaVersion(raw), nil
	default:
		return "", errors.Newf(errors.TypeConfig, "unknown output schema version %q", raw)
	}
}

// Row is one flat output record per account. All monetary and credit
// figures are truncated to integers at this boundary, never rounded.
type Row struct {
	CompanyName   string
	CompanyDomain string
	CompanyType   string

	CurrentMRR  int64
	CurrentARR  int64
	DiscountPct int64
	Discounts   string
	Interval    string

	PromptCapacity int64
	PromptUsage    int64
	OrgsCount      int64
	OrgsCountHF    int64

	RequiredCredits int64

	LeastCostPlanName       string
	LeastCostMRR            int64
	LeastCostMRRChange      int64
	LeastCostARRChange      int64
	LeastCostExtraCredits   int64
	LeastCostSurplusCredits int64

	MatchMRRPlanName       string
	MatchMRRMRR            int64
	MatchMRRExtraCredits   int64
	MatchMRRSurplusCredits int64
}

// Columns returns the ordered CSV header for the schema version
func (v SchemaVersion) Columns() []string {
	columns := []string{
		"company_name",
		"company_domain",
		"company_type",
		"current_mrr",
		"current_arr",
	}
	if v == SchemaV2 {
		columns = append(columns, "discount", "discounts")
	}
	columns = append(columns,
		"interval",
		"total_prompts_capacity",
		"total_prompts",
		"orgs_count",
		"orgs_count_hf",
		"required_credits",
		"least_cost_plan_name",
		"least_cost_mrr",
		"least_cost_mrr_change",
		"least_cost_arr_change",
		"least_cost_extra_credits_purchased",
		"least_cost_surplus_credits",
	)
	if v == SchemaV2 {
		columns = append(columns,
			"match_mrr_plan_name",
			"match_mrr_mrr",
			"match_mrr_extra_credits_purchased",
			"match_mrr_surplus_credits",
		)
	}
	return columns
}

// Record renders one row in the schema's column order
func (v SchemaVersion) Record(r Row) []string {
	record := []string{
		r.CompanyName,
		r.CompanyDomain,
		r.CompanyType,
		formatInt(r.CurrentMRR),
		formatInt(r.CurrentARR),
	}
	if v == SchemaV2 {
		record = append(record, formatInt(r.DiscountPct), r.Discounts)
	}
	record = append(record,
		r.Interval,
		formatInt(r.PromptCapacity),
		formatInt(r.PromptUsage),
		formatInt(r.OrgsCount),
		formatInt(r.OrgsCountHF),
		formatInt(r.RequiredCredits),
		r.LeastCostPlanName,
		formatInt(r.LeastCostMRR),
		formatInt(r.LeastCostMRRChange),
		formatInt(r.LeastCostARRChange),
		formatInt(r.LeastCostExtraCredits),
		formatInt(r.LeastCostSurplusCredits),
	)
	if v == SchemaV2 {
		record = append(record,
			r.MatchMRRPlanName,
			formatInt(r.MatchMRRMRR),
			formatInt(r.MatchMRRExtraCredits),
			formatInt(r.MatchMRRSurplusCredits),
		)
	}
	return record
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
