package services

import (
	"fmt"
	"strings"

	"coffee-dashboard/models"
)

// PrintInsightReport formats and prints the insight report to terminal
func PrintInsightReport(report *models.InsightReport) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("COFFEE BEAN DASHBOARD STATISTICS ", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Total Beans Tracked     : %d\n", report.TotalBeans)
	fmt.Printf("  Average Rating          : %.2f\n", report.AverageRating)
	fmt.Printf("  Unique Roasters         : %d\n", report.UniqueRoasters)
	fmt.Printf("  Unique Origins          : %d\n", report.UniqueOrigins)

	if len(report.TopRoasters) > 0 {
		fmt.Printf("\n TOP ROASTERS\n%s\n", thin)
		printBars(report.TopRoasters)
	}

	if len(report.TopOrigins) > 0 {
		fmt.Printf("\n TOP ORIGINS\n%s\n", thin)
		printBars(report.TopOrigins)
	}

	fmt.Printf("\n RATING DISTRIBUTION\n%s\n", thin)
	for _, bucket := range report.RatingDistribution {
		bar := strings.Repeat("▓", bucket.Count)
		fmt.Printf("  %-25s %3d  %s\n", bucket.Range+":", bucket.Count, bar)
	}

	if len(report.MonthlyTrends) > 0 {
		fmt.Printf("\n ROASTS PER MONTH (last %d months)\n%s\n", len(report.MonthlyTrends), thin)
		for _, month := range report.MonthlyTrends {
			bar := strings.Repeat("▓", month.Count)
			fmt.Printf("  %-25s %3d  %s\n", month.Month+":", month.Count, bar)
		}
	}

	if len(report.TopMachines) > 0 {
		fmt.Printf("\n TOP %d ESPRESSO MACHINES\n%s\n", len(report.TopMachines), thin)
		for i, m := range report.TopMachines {
			fmt.Printf("  %d. %-35s %d\n", i+1, truncate(m.Name, 35), m.Count)
		}
	}

	if len(report.TopGrinders) > 0 {
		fmt.Printf("\n TOP %d GRINDERS\n%s\n", len(report.TopGrinders), thin)
		for i, g := range report.TopGrinders {
			fmt.Printf("  %d. %-35s %d\n", i+1, truncate(g.Name, 35), g.Count)
		}
	}

	if len(report.RoastLevelDistribution) > 0 {
		fmt.Printf("\n ROAST LEVELS\n%s\n", thin)
		printBars(report.RoastLevelDistribution)
	}

	fmt.Printf("\n%s\n\n", border)
}

func printBars(entries []models.NameCount) {
	for _, e := range entries {
		bar := strings.Repeat("▓", e.Count)
		fmt.Printf("  %-25s %3d  %s\n", truncate(e.Name, 24)+":", e.Count, bar)
	}
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
