package services

// Canonicalization tables: lowercase, deaccented free-text variant -> display
// form. Canonical spellings map back to themselves, so applying the tables to
// already-standardized data is a no-op.

var roasterCanonical = map[string]string{
	// Counter Culture variations
	"counter culture":           "Counter Culture",
	"counterculture":            "Counter Culture",
	"counter culture coffee":    "Counter Culture",
	"counterculture coffee":     "Counter Culture",
	"counter culture coffee co": "Counter Culture",
	"counterculture coffee co":  "Counter Culture",
	"counter culter":            "Counter Culture",

	// Stumptown variations
	"stumptown":                 "Stumptown",
	"stumptown coffee":          "Stumptown",
	"stumptown coffee roasters": "Stumptown",
	"stumptown coffee roasting": "Stumptown",

	// Blue Bottle variations
	"blue bottle":        "Blue Bottle",
	"blue bottle coffee": "Blue Bottle",
	"bluebottle":         "Blue Bottle",
	"bluebottle coffee":  "Blue Bottle",

	// Intelligentsia variations
	"intelligentsia":              "Intelligentsia",
	"intelligentsia coffee":       "Intelligentsia",
	"intelligentsia coffee & tea": "Intelligentsia",

	// Perc variations
	"perc":        "Perc",
	"perc coffee": "Perc",

	// Black & White variations
	"black & white":                 "Black & White",
	"black & white coffee":          "Black & White",
	"black & white coffee roasters": "Black & White",
	"black and white":               "Black & White",

	// Verve variations
	"verve":                 "Verve",
	"verve coffee":          "Verve",
	"verve coffee roasters": "Verve",

	// Onyx variations
	"onyx":            "Onyx",
	"onyx coffee":     "Onyx",
	"onyx coffee lab": "Onyx",

	// Café du Jour variations
	"cafe du jour": "Café du Jour",
	"cafedujour":   "Café du Jour",
}

var originCanonical = map[string]string{
	"colombia": "Colombia",
	"columbia": "Colombia",

	"ethiopia": "Ethiopia",
	"ethopia":  "Ethiopia",

	"guatemala": "Guatemala",
	"gautemala": "Guatemala",

	"brazil": "Brazil",
	"brasil": "Brazil",

	"costa rica": "Costa Rica",
	"costarica":  "Costa Rica",

	"el salvador": "El Salvador",
	"salvador":    "El Salvador",

	"kenya":     "Kenya",
	"honduras":  "Honduras",
	"panama":    "Panama",
	"peru":      "Peru",
	"rwanda":    "Rwanda",
	"indonesia": "Indonesia",
	"yemen":     "Yemen",
}
