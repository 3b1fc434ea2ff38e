package model

import "strings"

const DefaultCategory = "Other"

// Categories is the taxonomy items are filed under, in display order.
var Categories = []string{
	"Fruits",
	"Vegetables",
	"Meat",
	"Seafood",
	"Dairy",
	"Bakery",
	"Pantry",
	"Frozen",
	"Beverages",
	"Snacks",
	"Household",
	"Personal Care",
	"Other",
}

// NormalizeCategory returns the canonical spelling of a known category
// (case-insensitive) and DefaultCategory for anything else.
func NormalizeCategory(name string) string {
	name = strings.TrimSpace(name)
	for _, c := range Categories {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	return DefaultCategory
}
