package models

// Column describes a user-facing table column backed by a Bean field.
type Column struct {
	Key      string
	Label    string
	Sortable bool
}

// Columns returns the fixed list of columns shown in the dashboard table.
func Columns() []Column {
	return []Column{
		{Key: "beanName", Label: "Coffee Bean", Sortable: true},
		{Key: "caffeine", Label: "Caffeine", Sortable: true},
		{Key: "roastLevel", Label: "Roast Level", Sortable: true},
		{Key: "roastDate", Label: "Roasted On", Sortable: true},
		{Key: "roaster", Label: "Roaster", Sortable: true},
		{Key: "roasterCountry", Label: "Roaster Location", Sortable: true},
		{Key: "rating", Label: "User Rating", Sortable: true},
		{Key: "price", Label: "Price Paid", Sortable: true},
		{Key: "weight", Label: "Bag Size", Sortable: true},
	}
}
