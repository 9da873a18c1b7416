package models

// Bean represents one coffee bean submission parsed from the spreadsheet.
// Every attribute is kept as the source string; parsing to numbers or dates
// happens at the point of use with per-field fallbacks.
type Bean struct {
	ID                 int
	BeanName           string
	Origin             string
	Caffeine           string
	RoastLevel         string
	RoastDate          string
	Roaster            string
	RoasterCity        string
	RoasterCountry     string
	Weight             string
	Currency           string
	Price              string
	CostPer100g        string
	CostPerPound       string
	TastingNotes       string
	Rating             string
	ProductURL         string
	TimeRested         string
	Dose               string
	Yield              string
	BrewRatio          string
	ShotTime           string
	EspressoMachine    string
	Grinder            string
	GrindSetting       string
	WaterTemperature   string
	BasketSpecs        string
	Profile            string
	AdditionalWorkflow string
	RedditUsername     string
}

// Field returns the value of the attribute identified by a column key.
// Unknown keys return the empty string.
func (b *Bean) Field(key string) string {
	switch key {
	case "beanName":
		return b.BeanName
	case "origin":
		return b.Origin
	case "caffeine":
		return b.Caffeine
	case "roastLevel":
		return b.RoastLevel
	case "roastDate":
		return b.RoastDate
	case "roaster":
		return b.Roaster
	case "roasterCity":
		return b.RoasterCity
	case "roasterCountry":
		return b.RoasterCountry
	case "weight":
		return b.Weight
	case "currency":
		return b.Currency
	case "price":
		return b.Price
	case "costPer100g":
		return b.CostPer100g
	case "costPerPound":
		return b.CostPerPound
	case "tastingNotes":
		return b.TastingNotes
	case "rating":
		return b.Rating
	case "productUrl":
		return b.ProductURL
	case "timeRested":
		return b.TimeRested
	case "dose":
		return b.Dose
	case "yield":
		return b.Yield
	case "brewRatio":
		return b.BrewRatio
	case "shotTime":
		return b.ShotTime
	case "espressoMachine":
		return b.EspressoMachine
	case "grinder":
		return b.Grinder
	case "grindSetting":
		return b.GrindSetting
	case "waterTemperature":
		return b.WaterTemperature
	case "basketSpecs":
		return b.BasketSpecs
	case "profile":
		return b.Profile
	case "additionalWorkflow":
		return b.AdditionalWorkflow
	case "redditUsername":
		return b.RedditUsername
	}
	return ""
}
