package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"coffee-dashboard/models"
	"coffee-dashboard/utils"
)

// CSVWriter exports a bean snapshot to a CSV file in the sheet's own
// column layout, so an exported file round-trips through the parser.
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// Export writes a slice of beans to the CSV file
func (w *CSVWriter) Export(beans []*models.Bean) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"id", "bean_name", "origin", "caffeine", "roast_level", "roast_date",
		"roaster", "roaster_city", "roaster_country", "weight", "currency",
		"price", "cost_per_100g", "cost_per_pound", "tasting_notes", "rating",
		"product_url", "time_rested", "dose", "yield", "brew_ratio",
		"shot_time", "espresso_machine", "grinder", "grind_setting",
		"water_temperature", "basket_specs", "profile",
		"additional_workflow", "reddit_username",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, b := range beans {
		row := []string{
			strconv.Itoa(b.ID),
			b.BeanName,
			b.Origin,
			b.Caffeine,
			b.RoastLevel,
			b.RoastDate,
			b.Roaster,
			b.RoasterCity,
			b.RoasterCountry,
			b.Weight,
			b.Currency,
			b.Price,
			b.CostPer100g,
			b.CostPerPound,
			b.TastingNotes,
			b.Rating,
			b.ProductURL,
			b.TimeRested,
			b.Dose,
			b.Yield,
			b.BrewRatio,
			b.ShotTime,
			b.EspressoMachine,
			b.Grinder,
			b.GrindSetting,
			b.WaterTemperature,
			b.BasketSpecs,
			b.Profile,
			b.AdditionalWorkflow,
			b.RedditUsername,
		}
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write CSV row for '%s': %v", b.BeanName, err)
		}
	}

	w.logger.Info("Bean snapshot written to: %s (%d rows)", w.filePath, len(beans))
	return nil
}
