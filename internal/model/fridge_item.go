package model

import "time"

// FridgeItem is one purchased batch of a product in household stock.
// Quantity only ever decreases (consume, discard, cook) until it reaches
// zero, at which point the item leaves active stock.
type FridgeItem struct {
	ID              string     `json:"id"`
	HouseholdID     string     `json:"household_id"`
	ItemID          string     `json:"item_id,omitempty"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Quantity        float64    `json:"quantity"`
	InitialQuantity float64    `json:"initial_quantity"`
	Unit            string     `json:"unit"`
	Location        string     `json:"location"`
	PurchasePrice   float64    `json:"purchase_price"`
	PurchaseDate    time.Time  `json:"purchase_date"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	IsUsed          bool       `json:"is_used"`
	PercentWasted   float64    `json:"percent_wasted"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
