package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"coffee-dashboard/models"
)

func filterFixture() []*models.Bean {
	return []*models.Bean{
		{ID: 1, BeanName: "Yirgacheffe", Origin: "Ethiopia", Roaster: "Counter Culture", TastingNotes: "floral, citrus", Rating: "9.1"},
		{ID: 2, BeanName: "Kenya AA", Origin: "Kenya", Roaster: "Onyx", TastingNotes: "blackcurrant", Rating: "8"},
		{ID: 3, BeanName: "House Blend", Origin: "Ethiopia", Roaster: "Onyx", TastingNotes: "chocolate", Rating: ""},
		{ID: 4, BeanName: "Geisha", Origin: "Panama", Roaster: "Counter Culture", TastingNotes: "jasmine", Rating: "9.8"},
	}
}

func ids(beans []*models.Bean) []int {
	out := make([]int, len(beans))
	for i, b := range beans {
		out[i] = b.ID
	}
	return out
}

func TestFilterEmptySpecIsNoOp(t *testing.T) {
	beans := filterFixture()
	require.Equal(t, ids(beans), ids(Filter(beans, FilterSpec{})))
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	beans := filterFixture()
	require.Equal(t, []int{1}, ids(Filter(beans, FilterSpec{Search: "YIRG"})))
	require.Equal(t, []int{2}, ids(Filter(beans, FilterSpec{Search: "blackcurrant"})))
	// search spans origin and roaster too
	require.Equal(t, []int{1, 3}, ids(Filter(beans, FilterSpec{Search: "ethiopia"})))
	require.Equal(t, []int{2, 3}, ids(Filter(beans, FilterSpec{Search: "onyx"})))
}

func TestFilterBlankSearchIsNoOp(t *testing.T) {
	beans := filterFixture()
	require.Equal(t, ids(beans), ids(Filter(beans, FilterSpec{Search: "   "})))
}

func TestFilterExactFacets(t *testing.T) {
	beans := filterFixture()
	require.Equal(t, []int{1, 3}, ids(Filter(beans, FilterSpec{Origin: "Ethiopia"})))
	require.Equal(t, []int{2, 3}, ids(Filter(beans, FilterSpec{Roaster: "Onyx"})))
	// facet match is exact, not case-folded
	require.Empty(t, Filter(beans, FilterSpec{Origin: "ethiopia"}))
}

func TestFilterMinRatingExcludesUnparsable(t *testing.T) {
	beans := filterFixture()
	min := 8.0
	// bean 3 has no parsable rating and is excluded once the filter is active
	require.Equal(t, []int{1, 2, 4}, ids(Filter(beans, FilterSpec{MinRating: &min})))

	high := 9.0
	require.Equal(t, []int{1, 4}, ids(Filter(beans, FilterSpec{MinRating: &high})))
}

func TestFilterConjunctionEqualsIntersection(t *testing.T) {
	beans := filterFixture()
	min := 9.0
	spec := FilterSpec{Search: "a", Origin: "Ethiopia", MinRating: &min}

	combined := ids(Filter(beans, spec))

	inAll := func(id int, sets ...[]int) bool {
		for _, set := range sets {
			found := false
			for _, v := range set {
				if v == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}

	bySearch := ids(Filter(beans, FilterSpec{Search: spec.Search}))
	byOrigin := ids(Filter(beans, FilterSpec{Origin: spec.Origin}))
	byRating := ids(Filter(beans, FilterSpec{MinRating: spec.MinRating}))

	var intersection []int
	for _, b := range beans {
		if inAll(b.ID, bySearch, byOrigin, byRating) {
			intersection = append(intersection, b.ID)
		}
	}
	require.Equal(t, intersection, combined)
}

func TestFilterPreservesOrder(t *testing.T) {
	beans := filterFixture()
	got := ids(Filter(beans, FilterSpec{Roaster: "Counter Culture"}))
	require.Equal(t, []int{1, 4}, got)
}

func TestFilterOptions(t *testing.T) {
	beans := filterFixture()
	require.Equal(t, []string{"Ethiopia", "Kenya", "Panama"}, OriginOptions(beans))
	require.Equal(t, []string{"Counter Culture", "Onyx"}, RoasterOptions(beans))
}
