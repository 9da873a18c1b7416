package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"coffee-dashboard/models"
	"coffee-dashboard/utils"
)

func newInsights() *InsightService {
	return NewInsightService(utils.NewLogger())
}

func TestGenerateAverageRatingExcludesUnparsable(t *testing.T) {
	beans := []*models.Bean{
		{ID: 1, BeanName: "A", Rating: "9"},
		{ID: 2, BeanName: "B", Rating: "7"},
		{ID: 3, BeanName: "C", Rating: ""},
	}

	report := newInsights().Generate(beans)
	require.Equal(t, 3, report.TotalBeans)
	require.InDelta(t, 8.0, report.AverageRating, 1e-9)
}

func TestGenerateRatingBucketBoundary(t *testing.T) {
	beans := []*models.Bean{
		{ID: 1, BeanName: "A", Rating: "8"}, // exactly 8 lands in "8-9"
		{ID: 2, BeanName: "B", Rating: "7.9"},
		{ID: 3, BeanName: "C", Rating: "4.2"},
		{ID: 4, BeanName: "D", Rating: "not rated"},
	}

	report := newInsights().Generate(beans)

	byRange := make(map[string]int)
	total := 0
	for _, b := range report.RatingDistribution {
		byRange[b.Range] = b.Count
		total += b.Count
	}
	require.Equal(t, 1, byRange["8-9"])
	require.Equal(t, 0, byRange["9-10"])
	require.Equal(t, 1, byRange["7-8"])
	require.Equal(t, 1, byRange["Below 5"])
	// unparsable ratings land in no bucket
	require.Equal(t, 3, total)
}

func TestGenerateUniqueCounts(t *testing.T) {
	beans := []*models.Bean{
		{ID: 1, BeanName: "A", Roaster: "Onyx", Origin: "Kenya"},
		{ID: 2, BeanName: "B", Roaster: "Onyx", Origin: "Ethiopia"},
		{ID: 3, BeanName: "C", Roaster: "", Origin: "Kenya"},
	}

	report := newInsights().Generate(beans)
	require.Equal(t, 1, report.UniqueRoasters)
	require.Equal(t, 2, report.UniqueOrigins)
}

func TestGenerateTopRoastersTiesKeepFirstOccurrence(t *testing.T) {
	beans := []*models.Bean{
		{ID: 1, BeanName: "A", Roaster: "Verve"},
		{ID: 2, BeanName: "B", Roaster: "Onyx"},
		{ID: 3, BeanName: "C", Roaster: "Onyx"},
		{ID: 4, BeanName: "D", Roaster: "Perc"},
	}

	report := newInsights().Generate(beans)
	require.Equal(t, []models.NameCount{
		{Name: "Onyx", Count: 2},
		{Name: "Verve", Count: 1}, // tied with Perc, seen first
		{Name: "Perc", Count: 1},
	}, report.TopRoasters)
}

func TestGenerateTopNLimits(t *testing.T) {
	var beans []*models.Bean
	for i := 0; i < 15; i++ {
		beans = append(beans, &models.Bean{
			ID:              i + 1,
			BeanName:        fmt.Sprintf("bean-%d", i),
			Roaster:         fmt.Sprintf("roaster-%d", i),
			Origin:          fmt.Sprintf("origin-%d", i),
			EspressoMachine: fmt.Sprintf("machine-%d", i),
			Grinder:         fmt.Sprintf("grinder-%d", i),
		})
	}

	report := newInsights().Generate(beans)
	require.Len(t, report.TopRoasters, 10)
	require.Len(t, report.TopOrigins, 8)
	require.Len(t, report.TopMachines, 8)
	require.Len(t, report.TopGrinders, 8)
}

func TestGenerateMonthlyTrendsKeepsLastTwelve(t *testing.T) {
	var beans []*models.Bean
	for month := 1; month <= 12; month++ {
		beans = append(beans, &models.Bean{
			ID: month, BeanName: "A",
			RoastDate: fmt.Sprintf("2023-%02d-10", month),
		})
	}
	beans = append(beans,
		&models.Bean{ID: 13, BeanName: "B", RoastDate: "2024-01-05"},
		&models.Bean{ID: 14, BeanName: "C", RoastDate: "2024-01-20"},
		&models.Bean{ID: 15, BeanName: "D", RoastDate: "someday"},
	)

	report := newInsights().Generate(beans)
	require.Len(t, report.MonthlyTrends, 12)
	// oldest month fell off the front; the newest is last with both roasts
	require.Equal(t, "2023-02", report.MonthlyTrends[0].Month)
	require.Equal(t, models.MonthCount{Month: "2024-01", Count: 2}, report.MonthlyTrends[11])
}

func TestGenerateRoastLevelsSortedByLabel(t *testing.T) {
	beans := []*models.Bean{
		{ID: 1, BeanName: "A", RoastLevel: "Medium"},
		{ID: 2, BeanName: "B", RoastLevel: "Dark"},
		{ID: 3, BeanName: "C", RoastLevel: "Light"},
		{ID: 4, BeanName: "D", RoastLevel: "Dark"},
	}

	report := newInsights().Generate(beans)
	require.Equal(t, []models.NameCount{
		{Name: "Dark", Count: 2},
		{Name: "Light", Count: 1},
		{Name: "Medium", Count: 1},
	}, report.RoastLevelDistribution)
}

func TestGenerateEmptySet(t *testing.T) {
	report := newInsights().Generate(nil)
	require.Equal(t, 0, report.TotalBeans)
	require.Equal(t, 0.0, report.AverageRating)
	require.Len(t, report.RatingDistribution, 6)
}

func TestGenerateVersionMemoizes(t *testing.T) {
	svc := newInsights()
	beans := []*models.Bean{{ID: 1, BeanName: "A", Rating: "8"}}

	first := svc.GenerateVersion(3, beans)
	second := svc.GenerateVersion(3, beans)
	require.Same(t, first, second)

	third := svc.GenerateVersion(4, beans)
	require.NotSame(t, first, third)
}
