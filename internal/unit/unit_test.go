package unit

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= 1e-6*scale
}

func TestClassify(t *testing.T) {
	cases := []struct {
		unit string
		want Kind
	}{
		{"g", Mass},
		{"kg", Mass},
		{"oz", Mass},
		{"lb", Mass},
		{"mg", Mass},
		{"ml", Volume},
		{"l", Volume},
		{"cup", Volume},
		{"tbsp", Volume},
		{"tsp", Volume},
		{"fl oz", Volume},
		{"pint", Volume},
		{"gallon", Volume},
		{"unit", Discrete},
		{"item", Discrete},
		{"pcs", Discrete},
		{"each", Discrete},
		{"ea", Discrete},
		{"cloves", Discrete},
		{"leaves", Discrete},
		{"sprigs", Discrete},
		{"servings", Discrete},
		{"handful", Unknown},
		{"", Unknown},
	}
	for _, c := range cases {
		if got := Classify(c.unit); got != c.want {
			t.Errorf("Classify(%q) = %v, want %v", c.unit, got, c.want)
		}
	}
}

func TestClassifyCaseAndWhitespace(t *testing.T) {
	if Classify("  KG ") != Mass {
		t.Error("expected '  KG ' to classify as mass")
	}
	if Classify("Cup") != Volume {
		t.Error("expected 'Cup' to classify as volume")
	}
}

func TestCompatible(t *testing.T) {
	if !Compatible("kg", "g") {
		t.Error("kg and g should be compatible")
	}
	if !Compatible("cup", "ml") {
		t.Error("cup and ml should be compatible")
	}
	if Compatible("kg", "ml") {
		t.Error("kg and ml should not be compatible")
	}
	if Compatible("g", "unit") {
		t.Error("g and unit should not be compatible")
	}
	if Compatible("handful", "handful") {
		t.Error("unknown units are never compatible, even with themselves")
	}
}

func TestCompatibleIsSymmetric(t *testing.T) {
	labels := []string{"g", "kg", "ml", "cup", "unit", "cloves", "handful"}
	for _, a := range labels {
		for _, b := range labels {
			if Compatible(a, b) != Compatible(b, a) {
				t.Errorf("Compatible(%q, %q) != Compatible(%q, %q)", a, b, b, a)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		qty  float64
		unit string
		want float64
	}{
		{1, "kg", 1000},
		{500, "mg", 0.5},
		{1, "lb", 453.592},
		{2, "l", 2000},
		{1, "cup", 236.588},
		{1, "tbsp", 14.7868},
		{3, "cloves", 3},
		{4, "handful", 4}, // unknown passes through
	}
	for _, c := range cases {
		if got := Normalize(c.qty, c.unit); !approxEqual(got, c.want) {
			t.Errorf("Normalize(%v, %q) = %v, want %v", c.qty, c.unit, got, c.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	supported := []string{
		"g", "kg", "mg", "oz", "lb",
		"ml", "l", "tsp", "tbsp", "cup", "fl oz", "pint", "gallon",
		"unit", "item", "pcs", "each", "ea", "clove", "cloves",
		"leaf", "leaves", "sprig", "sprigs", "serving", "servings",
	}
	quantities := []float64{0, 0.25, 1, 3.7, 100, 12345.678}
	for _, u := range supported {
		for _, q := range quantities {
			got := Denormalize(Normalize(q, u), u)
			if !approxEqual(got, q) {
				t.Errorf("Denormalize(Normalize(%v, %q)) = %v, want %v", q, u, got, q)
			}
		}
	}
}
