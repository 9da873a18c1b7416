package services

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"coffee-dashboard/models"
	"coffee-dashboard/utils"
)

const (
	topRoasterCount = 10
	topGroupCount   = 8
	trendMonths     = 12
)

// Rating buckets, checked top-down: a rating lands in the first bucket whose
// lower bound it reaches, so exactly 8 falls in "8-9".
var ratingBuckets = []struct {
	label string
	lower float64
}{
	{"9-10", 9},
	{"8-9", 8},
	{"7-8", 7},
	{"6-7", 6},
	{"5-6", 5},
	{"Below 5", math.Inf(-1)},
}

// InsightService computes the aggregate views behind the stats page. All
// views derive from one standardized snapshot; the result is memoized by
// snapshot version so an unchanged snapshot is never recomputed.
type InsightService struct {
	logger *utils.Logger

	mu          sync.Mutex
	lastVersion uint64
	lastReport  *models.InsightReport
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes every aggregate view from a standardized record set.
func (s *InsightService) Generate(beans []*models.Bean) *models.InsightReport {
	report := &models.InsightReport{}

	if len(beans) == 0 {
		s.logger.Warn("No beans to generate insights from")
		report.RatingDistribution = emptyDistribution()
		return report
	}

	var (
		ratingSum   float64
		ratingCount int
		roasters    = newGroupCounter()
		origins     = newGroupCounter()
		machines    = newGroupCounter()
		grinders    = newGroupCounter()
		roastLevels = newGroupCounter()
		buckets     = make([]int, len(ratingBuckets))
		months      = make(map[string]int)
	)

	for _, b := range beans {
		report.TotalBeans++

		if rating, ok := parseNumber(b.Rating); ok {
			ratingSum += rating
			ratingCount++
			for i, bucket := range ratingBuckets {
				if rating >= bucket.lower {
					buckets[i]++
					break
				}
			}
		}

		roasters.add(b.Roaster)
		origins.add(b.Origin)
		machines.add(b.EspressoMachine)
		grinders.add(b.Grinder)
		roastLevels.add(b.RoastLevel)

		if date, ok := parseDate(b.RoastDate); ok {
			months[fmt.Sprintf("%04d-%02d", date.Year(), int(date.Month()))]++
		}
	}

	if ratingCount > 0 {
		report.AverageRating = ratingSum / float64(ratingCount)
	}
	report.UniqueRoasters = roasters.distinct()
	report.UniqueOrigins = origins.distinct()

	report.TopRoasters = roasters.top(topRoasterCount)
	report.TopOrigins = origins.top(topGroupCount)
	report.TopMachines = machines.top(topGroupCount)
	report.TopGrinders = grinders.top(topGroupCount)
	report.RoastLevelDistribution = roastLevels.sortedByName()

	report.RatingDistribution = make([]models.RangeCount, len(ratingBuckets))
	for i, bucket := range ratingBuckets {
		report.RatingDistribution[i] = models.RangeCount{Range: bucket.label, Count: buckets[i]}
	}

	report.MonthlyTrends = monthlyTrend(months)

	return report
}

// GenerateVersion memoizes Generate by the store's snapshot version.
// Version zero is never cached.
func (s *InsightService) GenerateVersion(version uint64, beans []*models.Bean) *models.InsightReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version != 0 && version == s.lastVersion && s.lastReport != nil {
		return s.lastReport
	}

	report := s.Generate(beans)
	s.lastVersion = version
	s.lastReport = report
	return report
}

func emptyDistribution() []models.RangeCount {
	dist := make([]models.RangeCount, len(ratingBuckets))
	for i, bucket := range ratingBuckets {
		dist[i] = models.RangeCount{Range: bucket.label}
	}
	return dist
}

// monthlyTrend returns the most recent months with data, oldest first.
func monthlyTrend(months map[string]int) []models.MonthCount {
	keys := make([]string, 0, len(months))
	for month := range months {
		keys = append(keys, month)
	}
	sort.Strings(keys)
	if len(keys) > trendMonths {
		keys = keys[len(keys)-trendMonths:]
	}

	trend := make([]models.MonthCount, len(keys))
	for i, month := range keys {
		trend[i] = models.MonthCount{Month: month, Count: months[month]}
	}
	return trend
}

// groupCounter counts occurrences by exact value, remembering the order of
// first occurrence so count ties resolve deterministically.
type groupCounter struct {
	counts map[string]int
	order  []string
}

func newGroupCounter() *groupCounter {
	return &groupCounter{counts: make(map[string]int)}
}

func (g *groupCounter) add(value string) {
	if value == "" {
		return
	}
	if _, seen := g.counts[value]; !seen {
		g.order = append(g.order, value)
	}
	g.counts[value]++
}

func (g *groupCounter) distinct() int {
	return len(g.order)
}

// top returns the n most frequent values, ties broken by first occurrence.
func (g *groupCounter) top(n int) []models.NameCount {
	entries := make([]models.NameCount, 0, len(g.order))
	for _, name := range g.order {
		entries = append(entries, models.NameCount{Name: name, Count: g.counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// sortedByName returns every value ordered lexicographically by its raw label.
func (g *groupCounter) sortedByName() []models.NameCount {
	entries := make([]models.NameCount, 0, len(g.order))
	for _, name := range g.order {
		entries = append(entries, models.NameCount{Name: name, Count: g.counts[name]})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
	return entries
}
