package grocery

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/unit"
)

// identityKey derives the value used to recognize "the same product" across
// list entries: a validated item reference first, then the entry's own id if
// it is itself a validated reference, then the normalized name. An empty
// return means the entry cannot be deduplicated safely.
func identityKey(e model.GroceryEntry) string {
	if isItemRef(e.ItemID) {
		return e.ItemID
	}
	if isItemRef(e.ID) {
		return e.ID
	}
	return strings.ToLower(strings.TrimSpace(e.Name))
}

// isItemRef reports whether s looks like a server-issued reference id.
// Client-minted temporary ids fail this check and fall through to name keys.
func isItemRef(s string) bool {
	return s != "" && uuid.Validate(s) == nil
}

// Dedupe collapses duplicate grocery lines into one entry per identity key,
// preserving total desired quantity and completion state. The first-seen
// entry of each key wins its id, unit, and descriptive fields; quantities
// accumulate onto it. Output preserves first-seen order. Idempotent.
//
// Entries with no derivable key are dropped — a data-quality gap, not an
// error.
func Dedupe(entries []model.GroceryEntry) []model.GroceryEntry {
	merged := make(map[string]int, len(entries))
	out := make([]model.GroceryEntry, 0, len(entries))

	for _, e := range entries {
		key := identityKey(e)
		if key == "" {
			slog.Debug("grocery entry has no identity key, dropping", "entry_id", e.ID)
			continue
		}

		idx, seen := merged[key]
		if !seen {
			merged[key] = len(out)
			out = append(out, e)
			continue
		}

		acc := &out[idx]
		acc.Quantity = mergeQuantity(acc.Quantity, acc.Unit, e.Quantity, e.Unit)
		acc.Checked = acc.Checked || e.Checked
		acc.Purchased = acc.Purchased || e.Purchased
	}

	return out
}

// mergeQuantity combines a duplicate's quantity into the accumulator,
// expressed in the accumulator's (first-seen) unit. Identical units sum
// directly; compatible units sum through base quantities; incompatible units
// sum raw magnitudes, keeping the first-seen unit.
func mergeQuantity(accQty float64, accUnit string, qty float64, u string) float64 {
	if strings.EqualFold(strings.TrimSpace(accUnit), strings.TrimSpace(u)) {
		return accQty + qty
	}
	if unit.Compatible(accUnit, u) {
		base := unit.Normalize(accQty, accUnit) + unit.Normalize(qty, u)
		return unit.Denormalize(base, accUnit)
	}
	return accQty + qty
}
