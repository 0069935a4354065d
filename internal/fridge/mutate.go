package fridge

import (
	"log/slog"
	"math"

	"github.com/dukerupert/larder/internal/model"
)

// Outcome describes what a mutation did to a fridge item's quantity.
type Outcome int

const (
	Unchanged Outcome = iota
	Reduced
	Depleted
)

func (o Outcome) String() string {
	switch o {
	case Reduced:
		return "reduced"
	case Depleted:
		return "depleted"
	default:
		return "unchanged"
	}
}

// Consume subtracts amount from the item's quantity. When the remainder
// drops to zero or below, the item is Depleted: quantity clamps to zero and
// the item leaves active stock. Otherwise the remaining quantity is rounded
// to 2 decimal places for display stability.
func Consume(item model.FridgeItem, amount float64) (model.FridgeItem, Outcome) {
	remaining := item.Quantity - amount
	if remaining <= 0 {
		item.Quantity = 0
		item.IsUsed = true
		slog.Debug("fridge item finished", "item_id", item.ID, "name", item.Name)
		return item, Depleted
	}
	item.Quantity = round2(remaining)
	return item, Reduced
}

// Discard throws away percent of the item's current quantity and stamps the
// record as waste-attributed for later cost-of-waste accounting. A
// non-finite or non-positive percent is rejected silently: no state change.
func Discard(item model.FridgeItem, percent float64) (model.FridgeItem, Outcome) {
	if math.IsNaN(percent) || math.IsInf(percent, 0) || percent <= 0 {
		return item, Unchanged
	}

	amount := item.Quantity * (percent / 100)
	item, outcome := Consume(item, amount)
	item.PercentWasted = percent
	return item, outcome
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
