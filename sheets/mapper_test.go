package sheets

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var header = []string{"Timestamp", "Bean/blend name", "Origin"}

func TestMapRowsShortRowsArePadded(t *testing.T) {
	rows := [][]string{
		header,
		{"1", "Ethiopia Natural"}, // only 2 of 30 columns
	}

	beans := MapRows(rows)
	require.Len(t, beans, 1)
	require.Equal(t, "Ethiopia Natural", beans[0].BeanName)
	require.Equal(t, "", beans[0].Origin)
	require.Equal(t, "", beans[0].RedditUsername)
}

func TestMapRowsDropsBlankBeanName(t *testing.T) {
	rows := [][]string{
		header,
		{"1", "", "Ethiopia"},
		{"2", "Kenya AA", "Kenya"},
		{"3", "   ", "Brazil"},
	}

	beans := MapRows(rows)
	require.Len(t, beans, 1)
	require.Equal(t, "Kenya AA", beans[0].BeanName)
	// ids are dense over the kept records, not the source rows
	require.Equal(t, 1, beans[0].ID)
}

func TestMapRowsAssignsDenseIDs(t *testing.T) {
	rows := [][]string{
		header,
		{"1", "First"},
		{"2", ""},
		{"3", "Second"},
		{"4", "Third"},
	}

	beans := MapRows(rows)
	require.Len(t, beans, 3)
	for i, b := range beans {
		require.Equal(t, i+1, b.ID)
	}
}

func TestMapRowsFieldPositions(t *testing.T) {
	row := make([]string, columnCount)
	row[colBeanName] = "Colombia Supremo"
	row[colOrigin] = "Colombia"
	row[colRoastLevel] = "Medium"
	row[colRoaster] = "Counter Culture"
	row[colRating] = "8.5"
	row[colEspressoMachine] = "Gaggia Classic"
	row[colRedditUsername] = "u/espresso_fan"

	beans := MapRows([][]string{header, row})
	require.Len(t, beans, 1)

	b := beans[0]
	require.Equal(t, "Colombia Supremo", b.BeanName)
	require.Equal(t, "Colombia", b.Origin)
	require.Equal(t, "Medium", b.RoastLevel)
	require.Equal(t, "Counter Culture", b.Roaster)
	require.Equal(t, "8.5", b.Rating)
	require.Equal(t, "Gaggia Classic", b.EspressoMachine)
	require.Equal(t, "u/espresso_fan", b.RedditUsername)
}

func TestMapRowsHeaderOnly(t *testing.T) {
	require.Empty(t, MapRows([][]string{header}))
	require.Empty(t, MapRows(nil))
}

func TestCleanCellStripsSurroundingQuotes(t *testing.T) {
	require.Equal(t, "Kenya AA", cleanCell(`"Kenya AA"`))
	require.Equal(t, "Kenya AA", cleanCell(`'Kenya AA'`))
	require.Equal(t, "Kenya AA", cleanCell(`  Kenya AA  `))
	// only one layer comes off
	require.Equal(t, `"Kenya AA"`, cleanCell(`""Kenya AA""`))
	require.Equal(t, "", cleanCell(`""`))
	require.Equal(t, "", cleanCell(""))
}

func TestMapRowsEndToEnd(t *testing.T) {
	csv := "Timestamp,Bean/blend name,Origin\n" +
		"1,Yirgacheffe,Ethiopia\n" +
		"2,,Kenya\n"

	beans := MapRows(ParseCSV(csv))
	require.Len(t, beans, 1)
	require.Equal(t, 1, beans[0].ID)
	require.Equal(t, "Yirgacheffe", beans[0].BeanName)
}
