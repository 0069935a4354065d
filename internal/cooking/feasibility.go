package cooking

import (
	"math"
	"strings"

	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/unit"
)

// Feasibility reports how many servings of a recipe the current fridge
// stock supports, and which ingredient caps it.
type Feasibility struct {
	MaxServings int    `json:"max_servings"`
	Limiting    string `json:"limiting_ingredient,omitempty"`
}

// MaxServings computes the largest number of servings cookable from stock.
//
// A missing ingredient collapses the result to zero servings and overrides
// any partial-availability limit. An ingredient whose unit is incompatible
// with its matched stock is treated as non-blocking: unit-system mismatches
// must not falsely block cooking when quantities could plausibly be fine.
// When no ingredient produces a finite limit the recipe's base yield is
// assumed, and a recipe with all ingredients present in some quantity is
// never reported below one serving.
func MaxServings(r model.Recipe, stock []model.FridgeItem) Feasibility {
	baseServings := r.Servings
	if baseServings <= 0 {
		baseServings = 1
	}

	limited := false
	minPossible := math.Inf(1)
	limiting := ""

	for _, ing := range r.Ingredients {
		item := matchStock(stock, ing)
		if item == nil {
			return Feasibility{MaxServings: 0, Limiting: ing.Name}
		}

		ingUnit := defaultUnit(ing.Unit)
		itemUnit := defaultUnit(item.Unit)
		if !unit.Compatible(itemUnit, ingUnit) {
			continue
		}

		required := unit.Normalize(ing.Quantity, ingUnit)
		available := unit.Normalize(item.Quantity, itemUnit)
		if !isFinite(required) || !isFinite(available) || required <= 0 {
			continue
		}

		possible := available / required * float64(baseServings)
		if !limited || possible < minPossible {
			limited = true
			minPossible = possible
			limiting = ing.Name
		}
	}

	if !limited {
		return Feasibility{MaxServings: baseServings}
	}
	return Feasibility{
		MaxServings: int(math.Floor(math.Max(1, minPossible))),
		Limiting:    limiting,
	}
}

// matchStock finds the fridge item an ingredient draws from: an exact item
// reference match when both sides carry one, otherwise a case-insensitive
// name match. Depleted items are never eligible.
func matchStock(stock []model.FridgeItem, ing model.Ingredient) *model.FridgeItem {
	for i := range stock {
		fi := &stock[i]
		if fi.IsUsed {
			continue
		}
		if ing.ItemID != "" && fi.ItemID != "" {
			if fi.ItemID == ing.ItemID {
				return fi
			}
			continue
		}
		if strings.EqualFold(fi.Name, ing.Name) {
			return fi
		}
	}
	return nil
}

func defaultUnit(u string) string {
	if strings.TrimSpace(u) == "" {
		return "unit"
	}
	return u
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
