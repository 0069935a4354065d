package model

import "time"

type Recipe struct {
	ID          string       `json:"id"`
	HouseholdID string       `json:"household_id"`
	Name        string       `json:"name"`
	Servings    int          `json:"servings"`
	IsPublic    bool         `json:"is_public"`
	Ingredients []Ingredient `json:"ingredients"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// Ingredient quantities correspond to the recipe's base Servings yield.
// Ingredients are inputs to the feasibility computation and are never
// mutated by it.
type Ingredient struct {
	ID       int64   `json:"id"`
	RecipeID string  `json:"recipe_id"`
	ItemID   string  `json:"item_id,omitempty"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Position int     `json:"position"`
}
