package model

import "time"

type GroceryEntry struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	ItemID      string    `json:"item_id,omitempty"`
	Name        string    `json:"name"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category"`
	Checked     bool      `json:"checked"`
	Purchased   bool      `json:"purchased"`
	FromRecipe  string    `json:"from_recipe,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
