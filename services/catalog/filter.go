package catalog

import (
	"strings"

	"buildlanka/models"
)

// Filter returns the listings matching every set facet of the selection,
// preserving their input order. Unset facets impose no constraint, so an
// empty selection returns the full input. The input slice is never mutated
// and the result is always a fresh slice, empty (not nil) when nothing
// matches.
func Filter(listings []models.Listing, sel models.FilterSelection) []models.Listing {
	matched := make([]models.Listing, 0, len(listings))
	query := strings.ToLower(sel.Query)

	for _, l := range listings {
		if sel.Category != "" && l.Category != sel.Category {
			continue
		}
		if sel.District != "" && l.Supplier.District != sel.District {
			continue
		}
		if query != "" && !matchesQuery(l, query) {
			continue
		}
		matched = append(matched, l)
	}
	return matched
}

// matchesQuery reports whether the lower-cased query is a substring of the
// listing's name, description, or supplier name.
func matchesQuery(l models.Listing, query string) bool {
	return strings.Contains(strings.ToLower(l.Name), query) ||
		strings.Contains(strings.ToLower(l.Description), query) ||
		strings.Contains(strings.ToLower(l.Supplier.Name), query)
}

// Categories returns the distinct category tags of the listings in
// first-seen order. Used to populate selectable facet values.
func Categories(listings []models.Listing) []string {
	seen := make(map[string]bool, len(listings))
	var categories []string
	for _, l := range listings {
		if !seen[l.Category] {
			seen[l.Category] = true
			categories = append(categories, l.Category)
		}
	}
	return categories
}
