package model

import "time"

// Item is a catalog entry: the stable identity of a product, referenced by
// fridge items, grocery entries, and recipe ingredients via item_id.
type Item struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	DefaultUnit string    `json:"default_unit"`
	CreatedAt   time.Time `json:"created_at"`
}
