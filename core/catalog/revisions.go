// Package catalog - Built-in catalog revisions
package catalog

// Built-in revision names
const (
	// Revision202506 is the launch pricing. No sub-account ceilings and no
	// minimum overage purchase.
	Revision202506 = "2025-06"

	// Revision202507 is the current pricing: tightened starter allotments,
	// sub-account ceilings per tier, and overage sold in blocks of 1000.
	Revision202507 = "2025-07"
)

var builtin = map[string]*Revision{
	Revision202506: {
		Name: Revision202506,
		SelfManaged: []Tier{
			NewTier("starter", 89, 4450, 0, 0),
			NewTier("pro", 249, 18675, 0, 0),
			NewTier("enterprise", 499, 49900, 0, 0),
		},
		Agency: []Tier{
			NewTier("intro", 299, 14950, 0, 0),
			NewTier("growth", 499, 37425, 0, 0),
			NewTier("scale", 600, 60000, 0, 0),
		},
	},
	Revision202507: {
		Name: Revision202507,
		SelfManaged: []Tier{
			NewTier("starter", 89, 3560, 1000, 1),
			NewTier("pro", 199, 14925, 1000, 3),
			NewTier("enterprise", 499, 49900, 1000, 5),
		},
		Agency: []Tier{
			NewTier("intro", 89, 2250, 1000, 10),
			NewTier("growth", 199, 12935, 1000, 30),
			NewTier("scale", 499, 37425, 1000, 50),
		},
	},
}
