package cooking

import (
	"testing"

	"github.com/dukerupert/larder/internal/model"
)

func TestMaxServingsCrossUnit(t *testing.T) {
	// 2 L of milk covers four 500 ml servings.
	recipe := model.Recipe{
		Name:     "Porridge",
		Servings: 1,
		Ingredients: []model.Ingredient{
			{Name: "Milk", Quantity: 500, Unit: "ml"},
		},
	}
	stock := []model.FridgeItem{
		{ID: "f1", Name: "Milk", Quantity: 2, Unit: "L"},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 4 {
		t.Errorf("max servings = %d, want 4", f.MaxServings)
	}
	if f.Limiting != "Milk" {
		t.Errorf("limiting = %q, want Milk", f.Limiting)
	}
}

func TestMaxServingsMissingIngredient(t *testing.T) {
	recipe := model.Recipe{
		Name:     "Omelette",
		Servings: 2,
		Ingredients: []model.Ingredient{
			{Name: "Eggs", Quantity: 4, Unit: "unit"},
			{Name: "Butter", Quantity: 20, Unit: "g"},
		},
	}
	stock := []model.FridgeItem{
		{ID: "f1", Name: "Eggs", Quantity: 12, Unit: "unit"},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 0 {
		t.Errorf("max servings = %d, want 0", f.MaxServings)
	}
	if f.Limiting != "Butter" {
		t.Errorf("limiting = %q, want Butter", f.Limiting)
	}
}

func TestMaxServingsMissingOverridesPartial(t *testing.T) {
	// Scarce flour would limit to 1 serving, but the absent yeast
	// dominates any partial-availability limit.
	recipe := model.Recipe{
		Name:     "Bread",
		Servings: 4,
		Ingredients: []model.Ingredient{
			{Name: "Flour", Quantity: 500, Unit: "g"},
			{Name: "Yeast", Quantity: 7, Unit: "g"},
		},
	}
	stock := []model.FridgeItem{
		{ID: "f1", Name: "Flour", Quantity: 200, Unit: "g"},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 0 {
		t.Errorf("max servings = %d, want 0", f.MaxServings)
	}
	if f.Limiting != "Yeast" {
		t.Errorf("limiting = %q, want Yeast", f.Limiting)
	}
}

func TestMaxServingsIncompatibleUnitNonBlocking(t *testing.T) {
	recipe := model.Recipe{
		Name:     "Garlic butter",
		Servings: 2,
		Ingredients: []model.Ingredient{
			{Name: "Garlic", Quantity: 2, Unit: "cloves"},
			{Name: "Butter", Quantity: 100, Unit: "g"},
		},
	}
	stock := []model.FridgeItem{
		// Garlic stocked by mass: incompatible with cloves, skipped.
		{ID: "f1", Name: "Garlic", Quantity: 50, Unit: "g"},
		{ID: "f2", Name: "Butter", Quantity: 250, Unit: "g"},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 5 {
		t.Errorf("max servings = %d, want 5 (250g / 100g * 2)", f.MaxServings)
	}
	if f.Limiting != "Butter" {
		t.Errorf("limiting = %q, want Butter", f.Limiting)
	}
}

func TestMaxServingsNoFiniteLimitDefaultsToBase(t *testing.T) {
	// Every ingredient skips the limiting computation, so the base yield
	// stands.
	recipe := model.Recipe{
		Name:     "Seasoning mix",
		Servings: 3,
		Ingredients: []model.Ingredient{
			{Name: "Paprika", Quantity: 1, Unit: "tbsp"},
		},
	}
	stock := []model.FridgeItem{
		{ID: "f1", Name: "Paprika", Quantity: 1, Unit: "jar"}, // unknown unit
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 3 {
		t.Errorf("max servings = %d, want base 3", f.MaxServings)
	}
	if f.Limiting != "" {
		t.Errorf("limiting = %q, want empty", f.Limiting)
	}
}

func TestMaxServingsFlooredAtOne(t *testing.T) {
	// Only half the needed milk is there, but with all ingredients
	// present in some quantity the recipe never reads below 1 serving.
	recipe := model.Recipe{
		Name:     "Pancakes",
		Servings: 2,
		Ingredients: []model.Ingredient{
			{Name: "Milk", Quantity: 400, Unit: "ml"},
		},
	}
	stock := []model.FridgeItem{
		{ID: "f1", Name: "Milk", Quantity: 200, Unit: "ml"},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 1 {
		t.Errorf("max servings = %d, want 1", f.MaxServings)
	}
}

func TestMaxServingsPrefersItemReference(t *testing.T) {
	recipe := model.Recipe{
		Name:     "Smoothie",
		Servings: 1,
		Ingredients: []model.Ingredient{
			{Name: "Milk", ItemID: "item-milk", Quantity: 250, Unit: "ml"},
		},
	}
	stock := []model.FridgeItem{
		// Same name, wrong reference: not a match.
		{ID: "f1", ItemID: "item-oat-milk", Name: "Milk", Quantity: 10, Unit: "l"},
		{ID: "f2", ItemID: "item-milk", Name: "Whole Milk", Quantity: 500, Unit: "ml"},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 2 {
		t.Errorf("max servings = %d, want 2", f.MaxServings)
	}
}

func TestMaxServingsSkipsUsedItems(t *testing.T) {
	recipe := model.Recipe{
		Name:     "Toast",
		Servings: 1,
		Ingredients: []model.Ingredient{
			{Name: "Bread", Quantity: 2, Unit: "unit"},
		},
	}
	stock := []model.FridgeItem{
		{ID: "f1", Name: "Bread", Quantity: 8, Unit: "unit", IsUsed: true},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings != 0 {
		t.Errorf("max servings = %d, want 0 (only stock is depleted)", f.MaxServings)
	}
	if f.Limiting != "Bread" {
		t.Errorf("limiting = %q, want Bread", f.Limiting)
	}
}

func TestMaxServingsNeverNegative(t *testing.T) {
	recipe := model.Recipe{
		Name:     "Stew",
		Servings: 2,
		Ingredients: []model.Ingredient{
			{Name: "Carrots", Quantity: 300, Unit: "g"},
		},
	}
	stock := []model.FridgeItem{
		{ID: "f1", Name: "Carrots", Quantity: 0, Unit: "g"},
	}

	f := MaxServings(recipe, stock)
	if f.MaxServings < 0 {
		t.Errorf("max servings = %d, must never be negative", f.MaxServings)
	}
}
