package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRow() Row {
	return Row{
		CompanyName:   "Acme",
		CompanyDomain: "acme.test",
		CompanyType:   "IN_HOUSE",

		CurrentMRR:  100,
		CurrentARR:  1200,
		DiscountPct: 10,
		Discounts:   "1 (2)",
		Interval:    "month",

		PromptCapacity: 200,
		PromptUsage:    50,
		OrgsCount:      1,
		OrgsCountHF:    0,

		RequiredCredits: 3000,

		LeastCostPlanName:       "starter",
		LeastCostMRR:            89,
		LeastCostMRRChange:      -11,
		LeastCostARRChange:      -132,
		LeastCostExtraCredits:   0,
		LeastCostSurplusCredits: 560,

		MatchMRRPlanName:       "starter",
		MatchMRRMRR:            100,
		MatchMRRExtraCredits:   440,
		MatchMRRSurplusCredits: 1000,
	}
}

func TestParseSchemaVersion(t *testing.T) {
	for _, raw := range []string{"v1", "v2"} {
		v, err := ParseSchemaVersion(raw)
		require.NoError(t, err)
		assert.Equal(t, SchemaVersion(raw), v)
	}

	_, err := ParseSchemaVersion("v3")
	require.Error(t, err)
}

func TestSchemaColumnsMatchRecords(t *testing.T) {
	row := sampleRow()
	for _, v := range []SchemaVersion{SchemaV1, SchemaV2} {
		assert.Equal(t, len(v.Columns()), len(v.Record(row)), "schema %s", v)
	}
}

func TestSchemaV1OmitsMatchRevenueFields(t *testing.T) {
	columns := SchemaV1.Columns()

	assert.NotContains(t, columns, "match_mrr_plan_name")
	assert.NotContains(t, columns, "discounts")
	assert.Contains(t, columns, "least_cost_plan_name")
}

func TestSchemaV2Columns(t *testing.T) {
	columns := SchemaV2.Columns()

	assert.Contains(t, columns, "discount")
	assert.Contains(t, columns, "discounts")
	assert.Contains(t, columns, "match_mrr_plan_name")
	assert.Contains(t, columns, "match_mrr_surplus_credits")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, SchemaV2, []Row{sampleRow()}))

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	data := records[1]
	assert.Equal(t, SchemaV2.Columns(), header)

	byColumn := map[string]string{}
	for i, col := range header {
		byColumn[col] = data[i]
	}
	assert.Equal(t, "Acme", byColumn["company_name"])
	assert.Equal(t, "1 (2)", byColumn["discounts"])
	assert.Equal(t, "-132", byColumn["least_cost_arr_change"])
	assert.Equal(t, "440", byColumn["match_mrr_extra_credits_purchased"])
}

func TestWriteCSVEmptyRowsStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, SchemaV1, nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1)
}
