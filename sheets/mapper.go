package sheets

import (
	"strings"

	"coffee-dashboard/models"
)

// Column positions in the spreadsheet export. The sheet's layout is a fixed
// contract: the mapper trusts position, not header labels, so a reorder of
// the source columns must be reflected here and nowhere else.
const (
	colBeanName           = 1
	colOrigin             = 2
	colCaffeine           = 3
	colRoastLevel         = 4
	colRoastDate          = 5
	colRoaster            = 6
	colRoasterCity        = 7
	colRoasterCountry     = 8
	colWeight             = 9
	colCurrency           = 10
	colPrice              = 11
	colCostPer100g        = 12
	colCostPerPound       = 13
	colTastingNotes       = 14
	colRating             = 15
	colProductURL         = 16
	colTimeRested         = 17
	colDose               = 18
	colYield              = 19
	colBrewRatio          = 20
	colShotTime           = 21
	colEspressoMachine    = 22
	colGrinder            = 23
	colGrindSetting       = 24
	colWaterTemperature   = 25
	colBasketSpecs        = 26
	colProfile            = 27
	colAdditionalWorkflow = 28
	colRedditUsername     = 29

	columnCount = 30
)

// MapRows converts tokenized rows into Bean records. The first row is the
// header and is discarded. Short rows are right-padded so positional access
// never goes out of range; rows without a bean name are dropped. IDs are
// assigned 1-based over the kept records, in order of appearance.
func MapRows(rows [][]string) []*models.Bean {
	if len(rows) <= 1 {
		return nil
	}

	var beans []*models.Bean
	for _, row := range rows[1:] {
		cells := make([]string, columnCount)
		for i := range cells {
			if i < len(row) {
				cells[i] = cleanCell(row[i])
			}
		}

		if cells[colBeanName] == "" {
			continue
		}

		beans = append(beans, &models.Bean{
			ID:                 len(beans) + 1,
			BeanName:           cells[colBeanName],
			Origin:             cells[colOrigin],
			Caffeine:           cells[colCaffeine],
			RoastLevel:         cells[colRoastLevel],
			RoastDate:          cells[colRoastDate],
			Roaster:            cells[colRoaster],
			RoasterCity:        cells[colRoasterCity],
			RoasterCountry:     cells[colRoasterCountry],
			Weight:             cells[colWeight],
			Currency:           cells[colCurrency],
			Price:              cells[colPrice],
			CostPer100g:        cells[colCostPer100g],
			CostPerPound:       cells[colCostPerPound],
			TastingNotes:       cells[colTastingNotes],
			Rating:             cells[colRating],
			ProductURL:         cells[colProductURL],
			TimeRested:         cells[colTimeRested],
			Dose:               cells[colDose],
			Yield:              cells[colYield],
			BrewRatio:          cells[colBrewRatio],
			ShotTime:           cells[colShotTime],
			EspressoMachine:    cells[colEspressoMachine],
			Grinder:            cells[colGrinder],
			GrindSetting:       cells[colGrindSetting],
			WaterTemperature:   cells[colWaterTemperature],
			BasketSpecs:        cells[colBasketSpecs],
			Profile:            cells[colProfile],
			AdditionalWorkflow: cells[colAdditionalWorkflow],
			RedditUsername:     cells[colRedditUsername],
		})
	}

	return beans
}

// cleanCell strips one layer of surrounding single or double quotes and trims
// whitespace. This is a defensive second pass independent of the tokenizer's
// quote handling, for cells that arrive pre-quoted in the sheet itself.
func cleanCell(cell string) string {
	if cell == "" {
		return ""
	}
	if cell[0] == '"' || cell[0] == '\'' {
		cell = cell[1:]
	}
	if n := len(cell); n > 0 && (cell[n-1] == '"' || cell[n-1] == '\'') {
		cell = cell[:n-1]
	}
	return strings.TrimSpace(cell)
}
