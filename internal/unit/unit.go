package unit

import "strings"

// Kind classifies a measurement unit. Two units are compatible iff they
// share the same non-Unknown kind.
type Kind int

const (
	Unknown Kind = iota
	Mass
	Volume
	Discrete
)

func (k Kind) String() string {
	switch k {
	case Mass:
		return "mass"
	case Volume:
		return "volume"
	case Discrete:
		return "discrete"
	default:
		return "unknown"
	}
}

type def struct {
	kind Kind
	// toBase is the multiplier into the kind's base unit:
	// grams for mass, milliliters for volume, raw count for discrete.
	toBase float64
}

var units = map[string]def{
	// Mass — base: grams
	"g":  {kind: Mass, toBase: 1},
	"kg": {kind: Mass, toBase: 1000},
	"mg": {kind: Mass, toBase: 0.001},
	"oz": {kind: Mass, toBase: 28.3495},
	"lb": {kind: Mass, toBase: 453.592},

	// Volume — base: milliliters
	"ml":     {kind: Volume, toBase: 1},
	"l":      {kind: Volume, toBase: 1000},
	"tsp":    {kind: Volume, toBase: 4.92892},
	"tbsp":   {kind: Volume, toBase: 14.7868},
	"cup":    {kind: Volume, toBase: 236.588},
	"fl oz":  {kind: Volume, toBase: 29.5735},
	"pint":   {kind: Volume, toBase: 473.176},
	"gallon": {kind: Volume, toBase: 3785.41},

	// Discrete — base: count
	"unit":     {kind: Discrete, toBase: 1},
	"item":     {kind: Discrete, toBase: 1},
	"pcs":      {kind: Discrete, toBase: 1},
	"each":     {kind: Discrete, toBase: 1},
	"ea":       {kind: Discrete, toBase: 1},
	"clove":    {kind: Discrete, toBase: 1},
	"cloves":   {kind: Discrete, toBase: 1},
	"leaf":     {kind: Discrete, toBase: 1},
	"leaves":   {kind: Discrete, toBase: 1},
	"sprig":    {kind: Discrete, toBase: 1},
	"sprigs":   {kind: Discrete, toBase: 1},
	"serving":  {kind: Discrete, toBase: 1},
	"servings": {kind: Discrete, toBase: 1},
}

func canonical(u string) string {
	return strings.ToLower(strings.TrimSpace(u))
}

// Classify maps a unit label to its Kind. Matching is case- and
// whitespace-insensitive; unrecognized labels classify as Unknown,
// never an error.
func Classify(u string) Kind {
	return units[canonical(u)].kind
}

// Compatible reports whether two units share the same non-Unknown kind.
func Compatible(a, b string) bool {
	ka, kb := Classify(a), Classify(b)
	if ka == Unknown || kb == Unknown {
		return false
	}
	return ka == kb
}

// Normalize converts a quantity into its kind's base unit. Discrete and
// unrecognized units pass through unchanged.
func Normalize(qty float64, u string) float64 {
	d, ok := units[canonical(u)]
	if !ok {
		return qty
	}
	return qty * d.toBase
}

// Denormalize converts a base-unit quantity back into the given unit.
// It is the exact multiplicative inverse of Normalize for every unit.
func Denormalize(qty float64, u string) float64 {
	d, ok := units[canonical(u)]
	if !ok {
		return qty
	}
	return qty / d.toBase
}
