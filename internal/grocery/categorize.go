package grocery

import (
	"strings"
	"time"
)

// Categorize returns the grocery category for the given item name.
// It performs case-insensitive matching: exact match first, then substring
// match. Falls back to "Other" if no match is found.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "Other"
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	// Ordered longer/more-specific first
	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return "Other"
}

// DefaultExpiry returns the default expiration date for a freshly stored
// item of the given category, or nil when the category has no sensible
// default shelf life.
func DefaultExpiry(category string, now time.Time) *time.Time {
	var days int
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "meat":
		days = 4
	case "produce":
		days = 7
	case "dairy":
		days = 14
	default:
		return nil
	}
	t := now.AddDate(0, 0, days)
	return &t
}

var exactMatch = map[string]string{
	// Produce
	"apples":   "Produce",
	"bananas":  "Produce",
	"tomatoes": "Produce",
	"potatoes": "Produce",
	"onions":   "Produce",
	"garlic":   "Produce",
	"spinach":  "Produce",
	"carrots":  "Produce",
	"lemons":   "Produce",
	"basil":    "Produce",
	"cilantro": "Produce",

	// Dairy
	"milk":   "Dairy",
	"eggs":   "Dairy",
	"butter": "Dairy",
	"cheese": "Dairy",
	"yogurt": "Dairy",

	// Meat
	"chicken": "Meat",
	"beef":    "Meat",
	"pork":    "Meat",
	"bacon":   "Meat",
	"salmon":  "Meat",
	"shrimp":  "Meat",

	// Bakery
	"bread":     "Bakery",
	"bagels":    "Bakery",
	"tortillas": "Bakery",

	// Pantry
	"rice":      "Pantry",
	"pasta":     "Pantry",
	"flour":     "Pantry",
	"sugar":     "Pantry",
	"salt":      "Pantry",
	"olive oil": "Pantry",
	"broth":     "Pantry",

	// Beverages
	"coffee": "Beverages",
	"tea":    "Beverages",
	"juice":  "Beverages",

	// Household
	"paper towels": "Household",
	"dish soap":    "Household",
}

type substringEntry struct {
	keyword  string
	category string
}

// Ordered with longer/more-specific keywords first for deterministic priority.
var substringMatches = []substringEntry{
	// Meat
	{"chicken breast", "Meat"},
	{"ground beef", "Meat"},
	{"ground turkey", "Meat"},
	{"pork chop", "Meat"},
	{"sausage", "Meat"},
	{"turkey", "Meat"},
	{"steak", "Meat"},
	{"fish", "Meat"},

	// Dairy
	{"cream cheese", "Dairy"},
	{"sour cream", "Dairy"},
	{"greek yogurt", "Dairy"},
	{"yogurt", "Dairy"},
	{"cheese", "Dairy"},
	{"milk", "Dairy"},
	{"butter", "Dairy"},
	{"cream", "Dairy"},
	{"egg", "Dairy"},

	// Produce
	{"bell pepper", "Produce"},
	{"sweet potato", "Produce"},
	{"lettuce", "Produce"},
	{"apple", "Produce"},
	{"banana", "Produce"},
	{"tomato", "Produce"},
	{"potato", "Produce"},
	{"onion", "Produce"},
	{"carrot", "Produce"},
	{"berries", "Produce"},
	{"herb", "Produce"},

	// Bakery
	{"bread", "Bakery"},
	{"bagel", "Bakery"},
	{"tortilla", "Bakery"},
	{"bun", "Bakery"},

	// Pantry
	{"peanut butter", "Pantry"},
	{"olive oil", "Pantry"},
	{"soy sauce", "Pantry"},
	{"canned", "Pantry"},
	{"cereal", "Pantry"},
	{"rice", "Pantry"},
	{"pasta", "Pantry"},
	{"noodle", "Pantry"},
	{"flour", "Pantry"},
	{"sauce", "Pantry"},
	{"bean", "Pantry"},
	{"spice", "Pantry"},

	// Frozen
	{"frozen", "Frozen"},
	{"ice cream", "Frozen"},

	// Beverages
	{"sparkling water", "Beverages"},
	{"coffee", "Beverages"},
	{"juice", "Beverages"},
	{"soda", "Beverages"},
	{"wine", "Beverages"},
	{"beer", "Beverages"},

	// Household
	{"paper towel", "Household"},
	{"toilet paper", "Household"},
	{"detergent", "Household"},
	{"trash bag", "Household"},
	{"cleaner", "Household"},
	{"sponge", "Household"},
}
