package fridge

import (
	"math"
	"testing"

	"github.com/dukerupert/larder/internal/model"
)

func TestConsumePartial(t *testing.T) {
	item := model.FridgeItem{ID: "a", Name: "Butter", Quantity: 200, Unit: "g"}

	got, outcome := Consume(item, 50)
	if outcome != Reduced {
		t.Fatalf("outcome = %v, want Reduced", outcome)
	}
	if got.Quantity != 150 {
		t.Errorf("quantity = %v, want 150", got.Quantity)
	}
	if got.IsUsed {
		t.Error("item should remain active")
	}
}

func TestConsumeRoundsToTwoDecimals(t *testing.T) {
	item := model.FridgeItem{ID: "a", Name: "Milk", Quantity: 1, Unit: "l"}

	got, outcome := Consume(item, 0.333333)
	if outcome != Reduced {
		t.Fatalf("outcome = %v, want Reduced", outcome)
	}
	if got.Quantity != 0.67 {
		t.Errorf("quantity = %v, want 0.67", got.Quantity)
	}
}

func TestConsumeDepletes(t *testing.T) {
	item := model.FridgeItem{ID: "a", Name: "Eggs", Quantity: 6, Unit: "unit"}

	got, outcome := Consume(item, 6)
	if outcome != Depleted {
		t.Fatalf("outcome = %v, want Depleted", outcome)
	}
	if got.Quantity != 0 {
		t.Errorf("quantity = %v, want 0 (never negative)", got.Quantity)
	}
	if !got.IsUsed {
		t.Error("depleted item should be marked used")
	}
}

func TestConsumeOverdraftClampsAtZero(t *testing.T) {
	item := model.FridgeItem{ID: "a", Name: "Eggs", Quantity: 2, Unit: "unit"}

	got, outcome := Consume(item, 10)
	if outcome != Depleted {
		t.Fatalf("outcome = %v, want Depleted", outcome)
	}
	if got.Quantity != 0 {
		t.Errorf("quantity = %v, want 0", got.Quantity)
	}
}

func TestDiscardHalf(t *testing.T) {
	item := model.FridgeItem{ID: "a", Name: "Spinach", Quantity: 10, Unit: "g"}

	got, outcome := Discard(item, 50)
	if outcome != Reduced {
		t.Fatalf("outcome = %v, want Reduced", outcome)
	}
	if got.Quantity != 5 {
		t.Errorf("quantity = %v, want 5", got.Quantity)
	}
	if got.PercentWasted != 50 {
		t.Errorf("percent_wasted = %v, want 50", got.PercentWasted)
	}
}

func TestDiscardAll(t *testing.T) {
	item := model.FridgeItem{ID: "a", Name: "Spinach", Quantity: 10, Unit: "g"}

	got, outcome := Discard(item, 100)
	if outcome != Depleted {
		t.Fatalf("outcome = %v, want Depleted", outcome)
	}
	if got.PercentWasted != 100 {
		t.Errorf("percent_wasted = %v, want 100", got.PercentWasted)
	}
}

func TestDiscardInvalidPercentIsNoOp(t *testing.T) {
	item := model.FridgeItem{ID: "a", Name: "Spinach", Quantity: 10, Unit: "g"}

	for _, p := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, outcome := Discard(item, p)
		if outcome != Unchanged {
			t.Errorf("Discard(%v): outcome = %v, want Unchanged", p, outcome)
		}
		if got.Quantity != 10 {
			t.Errorf("Discard(%v): quantity = %v, want 10", p, got.Quantity)
		}
		if got.PercentWasted != 0 {
			t.Errorf("Discard(%v): percent_wasted = %v, want 0", p, got.PercentWasted)
		}
	}
}
