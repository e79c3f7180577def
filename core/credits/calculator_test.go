package credits

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"plan-migrate/core/types"
)

func TestRequiredUnits(t *testing.T) {
	calc := NewCalculator()

	// (1 + 1 + 0.5) * 100 * 30 = 7500
	got := calc.RequiredUnits([]string{"gpt-4o", "chatgpt", "llama-3-3-70b-instruct"}, 100, 0)
	assert.True(t, got.Equal(decimal.NewFromInt(7500)), "got %s", got)
}

func TestRequiredUnitsUnknownModelIsFree(t *testing.T) {
	calc := NewCalculator()

	got := calc.RequiredUnits([]string{"gpt-4o", "some-future-model"}, 10, 0)
	// Only gpt-4o prices: 1 * 10 * 30
	assert.True(t, got.Equal(decimal.NewFromInt(300)), "got %s", got)

	onlyUnknown := calc.RequiredUnits([]string{"some-future-model"}, 10, 0)
	assert.True(t, onlyUnknown.IsZero())
}

func TestRequiredUnitsZeroVolume(t *testing.T) {
	calc := NewCalculator()
	assert.True(t, calc.RequiredUnits([]string{"gpt-4o"}, 0, 0).IsZero())
}

func TestRequiredUnitsFrequencyScaling(t *testing.T) {
	calc := NewCalculator(WithModelFrequency())

	// Every 12 hours: 24/12 * 30 = 60 runs per month
	got := calc.RequiredUnits([]string{"gpt-4o"}, 10, 12)
	assert.True(t, got.Equal(decimal.NewFromInt(600)), "got %s", got)

	// Zero interval counts as once daily, not division by zero
	daily := calc.RequiredUnits([]string{"gpt-4o"}, 10, 0)
	assert.True(t, daily.Equal(decimal.NewFromInt(300)), "got %s", daily)
}

func TestRequiredUnitsFrequencyDisabledIgnoresInterval(t *testing.T) {
	calc := NewCalculator()

	fast := calc.RequiredUnits([]string{"gpt-4o"}, 10, 1)
	slow := calc.RequiredUnits([]string{"gpt-4o"}, 10, 48)
	assert.True(t, fast.Equal(slow))
}

func TestUsageAndCapacity(t *testing.T) {
	calc := NewCalculator()
	org := types.Organization{
		ModelIDs:     []string{"claude-sonnet-4"}, // price 2
		PromptLimit:  100,
		PromptsCount: 40,
	}

	assert.True(t, calc.Usage(org).Equal(decimal.NewFromInt(2400)))    // 2*40*30
	assert.True(t, calc.Capacity(org).Equal(decimal.NewFromInt(6000))) // 2*100*30
}

func TestWithPrices(t *testing.T) {
	calc := NewCalculator(WithPrices(map[string]decimal.Decimal{
		"custom": decimal.NewFromInt(3),
	}))

	got := calc.RequiredUnits([]string{"custom", "gpt-4o"}, 1, 0)
	// gpt-4o is unknown under the override map
	assert.True(t, got.Equal(decimal.NewFromInt(90)), "got %s", got)
}
