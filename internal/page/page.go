// Package page defines the page kinds the generator emits and the per-kind
// profile table that fixes their URL prefix, redirect parameters and which
// metadata blocks each kind carries.
package page

import "slices"

// Kind identifies one family of generated pages.
type Kind string

const (
	KindComparison  Kind = "comparison"
	KindAlternative Kind = "alternative"
	KindFeature     Kind = "feature"
	KindIndustry    Kind = "industry"
)

// Profile is the per-kind configuration row. Flagship kinds carry Open Graph and
// structured data; the long-tail industry tier carries neither.
type Profile struct {
	Label          string   // human label used in the run summary
	Prefix         string   // first path segment, disjoint across kinds
	RedirectParams []string // query parameter names for the SPA redirect, in order
	OpenGraph      bool
	StructuredData bool
}

var order = []Kind{KindComparison, KindAlternative, KindFeature, KindIndustry}

var profiles = map[Kind]Profile{
	KindComparison: {
		Label:          "VS",
		Prefix:         "vs",
		RedirectParams: []string{"vs"},
		OpenGraph:      true,
		StructuredData: true,
	},
	KindAlternative: {
		Label:          "Alternative",
		Prefix:         "alternative",
		RedirectParams: []string{"alt"},
		OpenGraph:      true,
		StructuredData: true,
	},
	KindFeature: {
		Label:          "Feature",
		Prefix:         "for",
		RedirectParams: []string{"feature"},
	},
	KindIndustry: {
		Label:          "Industry",
		Prefix:         "p",
		RedirectParams: []string{"industry", "use"},
	},
}

// Kinds returns every kind in generation order.
func Kinds() []Kind { return slices.Clone(order) }

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	_, ok := profiles[k]
	return ok
}

// Profile returns the profile row for k. Unknown kinds yield the zero Profile.
func (k Kind) Profile() Profile {
	p := profiles[k]
	p.RedirectParams = slices.Clone(p.RedirectParams)
	return p
}

func (k Kind) String() string { return string(k) }
