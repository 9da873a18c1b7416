package models

// NameCount is one grouped-count entry (roaster, origin, machine, grinder).
type NameCount struct {
	Name  string
	Count int
}

// RangeCount is one rating histogram bucket with its label.
type RangeCount struct {
	Range string
	Count int
}

// MonthCount is one month ("2006-01") of the roast-date trend.
type MonthCount struct {
	Month string
	Count int
}

// InsightReport holds every aggregate view derived from one standardized
// snapshot of the dataset.
type InsightReport struct {
	TotalBeans     int
	AverageRating  float64
	UniqueRoasters int
	UniqueOrigins  int

	TopRoasters []NameCount
	TopOrigins  []NameCount
	TopMachines []NameCount
	TopGrinders []NameCount

	RatingDistribution     []RangeCount
	MonthlyTrends          []MonthCount
	RoastLevelDistribution []NameCount
}
