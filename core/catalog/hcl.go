// Package catalog - HCL catalog files
// A revision can be supplied as an HCL file instead of a built-in table,
// so pricing experiments never require a rebuild.
package catalog

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"plan-migrate/internal/errors"
)

// catalogFile is the root of a catalog HCL document
type catalogFile struct {
	Revision string         `hcl:"revision"`
	Segments []segmentBlock `hcl:"segment,block"`
}

// segmentBlock holds the ordered tier blocks for one segment
type segmentBlock struct {
	Name  string      `hcl:"name,label"`
	Tiers []tierBlock `hcl:"tier,block"`
}

// tierBlock is one tier definition
type tierBlock struct {
	Name            string   `hcl:"name,label"`
	BasePrice       float64  `hcl:"base_price"`
	IncludedUnits   float64  `hcl:"included_units"`
	UnitPrice       *float64 `hcl:"unit_price,optional"`
	MinOverageUnits float64  `hcl:"min_overage_units,optional"`
	MaxSubAccounts  int      `hcl:"max_sub_accounts,optional"`
}

// Segment block labels accepted in catalog files
const (
	segmentSelfManaged = "self_managed"
	segmentAgency      = "agency"
)

// LoadFile parses and validates a catalog revision from an HCL file
func LoadFile(path string) (*Revision, error) {
	var file catalogFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errors.Parsing("catalog file "+path, err)
	}

	rev := &Revision{Name: file.Revision}
	for _, seg := range file.Segments {
		tiers := make([]Tier, 0, len(seg.Tiers))
		for _, tb := range seg.Tiers {
			tiers = append(tiers, tb.toTier())
		}
		switch seg.Name {
		case segmentSelfManaged:
			rev.SelfManaged = tiers
		case segmentAgency:
			rev.Agency = tiers
		default:
			return nil, errors.Newf(errors.TypeCatalog, "catalog file %s: unknown segment %q", path, seg.Name)
		}
	}

	if err := rev.Validate(); err != nil {
		return nil, err
	}
	return rev, nil
}

func (tb tierBlock) toTier() Tier {
	base := decimal.NewFromFloat(tb.BasePrice)
	included := decimal.NewFromFloat(tb.IncludedUnits)

	unitPrice := decimal.Zero
	if tb.UnitPrice != nil {
		unitPrice = decimal.NewFromFloat(*tb.UnitPrice)
	} else if included.IsPositive() {
		unitPrice = base.Div(included)
	}

	return Tier{
		Name:            tb.Name,
		BasePrice:       base,
		IncludedUnits:   included,
		UnitPrice:       unitPrice,
		MinOverageUnits: decimal.NewFromFloat(tb.MinOverageUnits),
		MaxSubAccounts:  tb.MaxSubAccounts,
	}
}
