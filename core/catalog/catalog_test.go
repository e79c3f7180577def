package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plan-migrate/core/types"
	"plan-migrate/internal/errors"
)

func TestNewTierDerivesUnitPrice(t *testing.T) {
	tier := NewTier("starter", 89, 4450, 1000, 1)

	assert.True(t, tier.UnitPrice.Equal(decimal.NewFromFloat(0.02)), "got %s", tier.UnitPrice)
	assert.True(t, tier.BasePrice.Equal(decimal.NewFromInt(89)))
	assert.Equal(t, 1, tier.MaxSubAccounts)
}

func TestTierSupports(t *testing.T) {
	constrained := NewTier("pro", 199, 14925, 0, 3)
	assert.True(t, constrained.Supports(3))
	assert.False(t, constrained.Supports(4))

	open := NewTier("open", 100, 1000, 0, 0)
	assert.True(t, open.Unconstrained())
	assert.True(t, open.Supports(1000))
}

func TestLookupBuiltins(t *testing.T) {
	for _, name := range Names() {
		rev, err := Lookup(name)
		require.NoError(t, err)
		require.NoError(t, rev.Validate(), "revision %s", name)
	}

	_, err := Lookup("2019-01")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotFound))
}

func TestTiersForSegment(t *testing.T) {
	rev, err := Lookup(Revision202507)
	require.NoError(t, err)

	assert.Equal(t, "starter", rev.TiersFor(types.SegmentSelfManaged)[0].Name)
	assert.Equal(t, "intro", rev.TiersFor(types.SegmentAgency)[0].Name)
	// The unmanaged segment prices against the self-managed table
	assert.Equal(t, "starter", rev.TiersFor(types.SegmentUnmanaged)[0].Name)
}

func TestValidateRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		rev  Revision
	}{
		{
			name: "empty segment",
			rev: Revision{
				Name:        "bad",
				SelfManaged: []Tier{NewTier("a", 1, 1, 0, 0)},
			},
		},
		{
			name: "duplicate tier name",
			rev: Revision{
				Name:        "bad",
				SelfManaged: []Tier{NewTier("a", 1, 1, 0, 0), NewTier("a", 2, 2, 0, 0)},
				Agency:      []Tier{NewTier("b", 1, 1, 0, 0)},
			},
		},
		{
			name: "zero unit price",
			rev: Revision{
				Name: "bad",
				SelfManaged: []Tier{{
					Name:          "a",
					BasePrice:     decimal.NewFromInt(10),
					IncludedUnits: decimal.NewFromInt(100),
					UnitPrice:     decimal.Zero,
				}},
				Agency: []Tier{NewTier("b", 1, 1, 0, 0)},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.rev.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeCatalog))
		})
	}
}
