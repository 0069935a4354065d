package cooking

import (
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/unit"
)

// Remaining base quantity at or below this is treated as depletion, so that
// float residue never strands a crumb of stock.
const depletionEpsilon = 0.01

// Skip reasons reported on a Consumption.
const (
	SkipNoMatch      = "no matching stock"
	SkipIncompatible = "incompatible units"
	SkipBadQuantity  = "invalid quantity"
)

// Consumption is the outcome of cooking one ingredient: either an amount to
// deduct from a fridge item (in that item's own unit), a full removal, or a
// skip with its reason. One Consumption is produced per recipe ingredient.
type Consumption struct {
	Ingredient string  `json:"ingredient"`
	ItemID     string  `json:"item_id,omitempty"`
	Amount     float64 `json:"amount,omitempty"`
	Unit       string  `json:"unit,omitempty"`
	Removed    bool    `json:"removed,omitempty"`
	Skipped    bool    `json:"skipped,omitempty"`
	Reason     string  `json:"reason,omitempty"`
}

// Plan computes the per-ingredient consumption for cooking the requested
// number of servings from the given stock snapshot. Ingredients are planned
// independently: a missing match or incompatible unit skips that ingredient
// and never fails the recipe. Callers apply the non-skipped consumptions;
// there is no all-or-nothing guarantee across ingredients.
func Plan(r model.Recipe, servings int, stock []model.FridgeItem) []Consumption {
	baseServings := r.Servings
	if baseServings <= 0 {
		baseServings = 1
	}
	if servings <= 0 {
		servings = baseServings
	}
	scale := float64(servings) / float64(baseServings)

	out := make([]Consumption, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		out = append(out, planIngredient(ing, scale, stock))
	}
	return out
}

func planIngredient(ing model.Ingredient, scale float64, stock []model.FridgeItem) Consumption {
	c := Consumption{Ingredient: ing.Name}

	item := matchStock(stock, ing)
	if item == nil {
		c.Skipped = true
		c.Reason = SkipNoMatch
		return c
	}

	ingUnit := defaultUnit(ing.Unit)
	itemUnit := defaultUnit(item.Unit)
	if !unit.Compatible(itemUnit, ingUnit) {
		c.Skipped = true
		c.Reason = SkipIncompatible
		return c
	}

	need := unit.Normalize(ing.Quantity*scale, ingUnit)
	have := unit.Normalize(item.Quantity, itemUnit)
	if !isFinite(need) || !isFinite(have) {
		c.Skipped = true
		c.Reason = SkipBadQuantity
		return c
	}

	c.ItemID = item.ID
	c.Unit = item.Unit
	if have-need <= depletionEpsilon {
		// Needing at least what is there consumes the whole item.
		c.Amount = item.Quantity
		c.Removed = true
		return c
	}
	c.Amount = unit.Denormalize(need, itemUnit)
	return c
}
