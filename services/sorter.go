package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"coffee-dashboard/models"
)

// Direction of a sort.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Sort returns a reordered copy of beans ordered by the given column key.
// The input slice is left untouched. Comparators are type-aware: roastDate
// sorts as a calendar date (unparsable dates fall back to a far-past epoch),
// rating/price/weight sort numerically (unparsable values count as zero),
// everything else sorts with a case-insensitive locale-aware collation.
func Sort(beans []*models.Bean, key string, dir Direction) []*models.Bean {
	result := make([]*models.Bean, len(beans))
	copy(result, beans)

	cmp := comparatorFor(key)
	sort.SliceStable(result, func(i, j int) bool {
		c := cmp(result[i], result[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
	return result
}

func comparatorFor(key string) func(a, b *models.Bean) int {
	switch key {
	case "roastDate":
		return func(a, b *models.Bean) int {
			at, bt := dateOrEpoch(a.RoastDate), dateOrEpoch(b.RoastDate)
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	case "rating", "price", "weight":
		return func(a, b *models.Bean) int {
			av, bv := numberOrZero(a.Field(key)), numberOrZero(b.Field(key))
			switch {
			case av < bv:
				return -1
			case av > bv:
				return 1
			}
			return 0
		}
	default:
		// Collators carry internal buffers, so build one per sort
		c := collate.New(language.English, collate.IgnoreCase)
		return func(a, b *models.Bean) int {
			return c.CompareString(a.Field(key), b.Field(key))
		}
	}
}
