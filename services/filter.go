package services

import (
	"sort"
	"strings"

	"coffee-dashboard/models"
)

// FilterSpec is a conjunction of criteria applied to the record set.
// Zero-valued criteria are no-ops and do not narrow the result.
type FilterSpec struct {
	Search    string   // case-insensitive substring over name/origin/roaster/notes
	Origin    string   // exact match against the standardized origin
	Roaster   string   // exact match against the standardized roaster
	MinRating *float64 // beans with unparsable ratings are excluded when set
}

// Filter returns the subsequence of beans satisfying every supplied
// criterion. Input order is preserved; the input slice is not modified.
func Filter(beans []*models.Bean, spec FilterSpec) []*models.Bean {
	term := strings.ToLower(strings.TrimSpace(spec.Search))

	result := make([]*models.Bean, 0, len(beans))
	for _, b := range beans {
		if term != "" && !matchesSearch(b, term) {
			continue
		}
		if spec.Origin != "" && b.Origin != spec.Origin {
			continue
		}
		if spec.Roaster != "" && b.Roaster != spec.Roaster {
			continue
		}
		if spec.MinRating != nil {
			rating, ok := parseNumber(b.Rating)
			if !ok || rating < *spec.MinRating {
				continue
			}
		}
		result = append(result, b)
	}
	return result
}

func matchesSearch(b *models.Bean, term string) bool {
	return strings.Contains(strings.ToLower(b.BeanName), term) ||
		strings.Contains(strings.ToLower(b.Origin), term) ||
		strings.Contains(strings.ToLower(b.Roaster), term) ||
		strings.Contains(strings.ToLower(b.TastingNotes), term)
}

// OriginOptions returns the distinct non-empty origin values, sorted, for the
// origin dropdown. Options come from the live data so exact-match filtering
// always has a hit.
func OriginOptions(beans []*models.Bean) []string {
	return distinctValues(beans, func(b *models.Bean) string { return b.Origin })
}

// RoasterOptions returns the distinct non-empty roaster values, sorted.
func RoasterOptions(beans []*models.Bean) []string {
	return distinctValues(beans, func(b *models.Bean) string { return b.Roaster })
}

func distinctValues(beans []*models.Bean, field func(*models.Bean) string) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, b := range beans {
		v := field(b)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
