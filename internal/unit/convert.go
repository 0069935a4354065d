package unit

// DefaultDensity is the grams-per-milliliter ratio assumed when no
// per-ingredient density is known. Water-like; callers needing accuracy
// must supply a real value.
const DefaultDensity = 1.0

// Convert converts a quantity between two units. The second return value
// reports whether the conversion is defined:
//
//   - identical units convert as the identity, avoiding round-trip error
//   - unknown units on either side are not convertible
//   - units of the same kind convert through the kind's base unit
//   - mass and volume bridge through density (g/ml), which must be > 0
//   - any other kind pairing (e.g. discrete to mass) is not convertible
//
// Incompatibility is a reported condition, not an error.
func Convert(qty float64, from, to string, density float64) (float64, bool) {
	cf, ct := canonical(from), canonical(to)
	if cf == ct {
		return qty, true
	}

	kf, kt := Classify(cf), Classify(ct)
	if kf == Unknown || kt == Unknown {
		return 0, false
	}

	if kf == kt {
		return Denormalize(Normalize(qty, cf), ct), true
	}

	switch {
	case kf == Mass && kt == Volume:
		if density <= 0 {
			return 0, false
		}
		return Denormalize(Normalize(qty, cf)/density, ct), true
	case kf == Volume && kt == Mass:
		if density <= 0 {
			return 0, false
		}
		return Denormalize(Normalize(qty, cf)*density, ct), true
	}

	return 0, false
}
