// Package credits - Resource requirement calculation
// Converts per-organization model usage into monthly credit figures.
package credits

import (
	"github.com/shopspring/decimal"

	"plan-migrate/core/types"
)

// DefaultModelPrices is the per-prompt credit price of every known model.
// Unknown model ids price at zero; they are free, never an error.
func DefaultModelPrices() map[string]decimal.Decimal {
	half := decimal.NewFromFloat(0.5)
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)
	return map[string]decimal.Decimal{
		"gpt-4o":                 one,
		"chatgpt":                one,
		"sonar":                  one,
		"google-ai-overview":     one,
		"llama-3-3-70b-instruct": half,
		"gpt-4o-search":          one,
		"claude-sonnet-4":        two,
		"claude-3-5-haiku":       two,
		"gemini-1-5-flash":       one,
		"deepseek-r1":            one,
		"gemini-2-5-flash":       two,
		"google-ai-mode":         one,
		"grok-2-1212":            two,
		"gpt-3-5-turbo":          one,
	}
}

// Calculator converts model usage into monthly credit requirements.
// Immutable after construction; safe for concurrent use.
type Calculator struct {
	prices         map[string]decimal.Decimal
	modelFrequency bool
}

// Option configures a Calculator
type Option func(*Calculator)

// WithModelFrequency scales the monthly multiplier by the organization's
// run interval instead of assuming one run per day
func WithModelFrequency() Option {
	return func(c *Calculator) {
		c.modelFrequency = true
	}
}

// WithPrices overrides the model price map
func WithPrices(prices map[string]decimal.Decimal) Option {
	return func(c *Calculator) {
		c.prices = prices
	}
}

// NewCalculator builds a calculator with the default model price map
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{prices: DefaultModelPrices()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	daysPerMonth = decimal.NewFromInt(30)
	hoursPerDay  = decimal.NewFromInt(24)
)

// RequiredUnits computes the monthly credit requirement for a set of
// models at a given prompt volume. The monthly multiplier is 30 runs,
// scaled by run frequency when frequency modeling is enabled; a zero or
// unset interval counts as once daily.
func (c *Calculator) RequiredUnits(modelIDs []string, volume int64, intervalHours int64) decimal.Decimal {
	perRun := decimal.Zero
	for _, id := range modelIDs {
		if price, ok := c.prices[id]; ok {
			perRun = perRun.Add(price)
		}
	}

	monthly := daysPerMonth
	if c.modelFrequency {
		if intervalHours <= 0 {
			intervalHours = 24
		}
		runsPerDay := hoursPerDay.Div(decimal.NewFromInt(intervalHours))
		monthly = runsPerDay.Mul(daysPerMonth)
	}

	return perRun.Mul(decimal.NewFromInt(volume)).Mul(monthly)
}

// Usage is the credit requirement implied by an organization's actual
// prompt count
func (c *Calculator) Usage(org types.Organization) decimal.Decimal {
	return c.RequiredUnits(org.ModelIDs, org.PromptsCount, org.ChatIntervalInHours)
}

// Capacity is the credit requirement implied by an organization's prompt
// limit
func (c *Calculator) Capacity(org types.Organization) decimal.Decimal {
	return c.RequiredUnits(org.ModelIDs, org.PromptLimit, org.ChatIntervalInHours)
}
