package domain

// FilterCriteria describes a catalog filter. All active predicates are
// combined with AND; membership within a single facet (origins, roast
// levels) is OR across the selected set. Zero-value criteria match
// every product.
type FilterCriteria struct {
	Origins     []string
	RoastLevels []string
	MinPrice    *float64
	MaxPrice    *float64
	OrganicOnly bool
	Search      string
}

// FacetOptions lists the selectable filter values, derived from the
// current catalog rather than hardcoded.
type FacetOptions struct {
	Origins     []string `json:"origins"`
	RoastLevels []string `json:"roast_levels"`
}
