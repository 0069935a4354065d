package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/grocery"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/store"
	"github.com/dukerupert/larder/internal/websocket"
)

type GroceryHandler struct {
	groceryStore *store.GroceryStore
	hub          *websocket.Hub
	logger       *slog.Logger
}

func NewGroceryHandler(gs *store.GroceryStore, hub *websocket.Hub, logger *slog.Logger) *GroceryHandler {
	return &GroceryHandler{groceryStore: gs, hub: hub, logger: logger}
}

type groceryEntryRequest struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
}

func (h *GroceryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.groceryStore.List(auth.HouseholdID(r.Context()))
	if err != nil {
		h.logger.Error("list grocery entries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list grocery entries")
		return
	}
	if entries == nil {
		entries = []model.GroceryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *GroceryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req groceryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Quantity <= 0 {
		req.Quantity = 1
	}
	if req.Category == "" {
		req.Category = grocery.Categorize(req.Name)
	}

	householdID := auth.HouseholdID(r.Context())
	entry, err := h.groceryStore.Create(model.GroceryEntry{
		HouseholdID: householdID,
		ItemID:      req.ItemID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Category:    req.Category,
	})
	if err != nil {
		h.logger.Error("create grocery entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create grocery entry")
		return
	}

	h.hub.Broadcast(householdID, websocket.NewMessage("grocery_entry", "created", entry.ID, nil))
	writeJSON(w, http.StatusCreated, entry)
}

func (h *GroceryHandler) Update(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	var req groceryEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name != "" {
		entry.Name = req.Name
	}
	if req.Quantity > 0 {
		entry.Quantity = req.Quantity
	}
	if req.Unit != "" {
		entry.Unit = req.Unit
	}
	if req.Category != "" {
		entry.Category = req.Category
	}

	updated, err := h.groceryStore.Update(*entry)
	if err != nil {
		h.logger.Error("update grocery entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update grocery entry")
		return
	}

	h.hub.Broadcast(entry.HouseholdID, websocket.NewMessage("grocery_entry", "updated", updated.ID, nil))
	writeJSON(w, http.StatusOK, updated)
}

func (h *GroceryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	if err := h.groceryStore.Delete(entry.ID); err != nil {
		h.logger.Error("delete grocery entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete grocery entry")
		return
	}

	h.hub.Broadcast(entry.HouseholdID, websocket.NewMessage("grocery_entry", "deleted", entry.ID, nil))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Toggle flips the checked flag on a list entry.
func (h *GroceryHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.ownedEntry(w, r)
	if !ok {
		return
	}

	entry.Checked = !entry.Checked
	updated, err := h.groceryStore.Update(*entry)
	if err != nil {
		h.logger.Error("toggle grocery entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update grocery entry")
		return
	}

	h.hub.Broadcast(entry.HouseholdID, websocket.NewMessage("grocery_entry", "toggled", updated.ID, nil))
	writeJSON(w, http.StatusOK, updated)
}

// Dedupe merges duplicate entries on the household's list and persists the
// collapsed result. Safe to call repeatedly.
func (h *GroceryHandler) Dedupe(w http.ResponseWriter, r *http.Request) {
	householdID := auth.HouseholdID(r.Context())

	entries, err := h.groceryStore.List(householdID)
	if err != nil {
		h.logger.Error("list grocery entries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list grocery entries")
		return
	}

	deduped := grocery.Dedupe(entries)
	if err := h.groceryStore.Replace(householdID, deduped); err != nil {
		h.logger.Error("replace grocery entries", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to save deduplicated list")
		return
	}

	h.hub.Broadcast(householdID, websocket.NewMessage("grocery_list", "deduplicated", "", map[string]any{
		"before": len(entries),
		"after":  len(deduped),
	}))
	writeJSON(w, http.StatusOK, deduped)
}

func (h *GroceryHandler) ownedEntry(w http.ResponseWriter, r *http.Request) (*model.GroceryEntry, bool) {
	id := idParam(r)
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}

	entry, err := h.groceryStore.GetByID(id)
	if err != nil {
		h.logger.Error("get grocery entry", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get grocery entry")
		return nil, false
	}
	if entry == nil || entry.HouseholdID != auth.HouseholdID(r.Context()) {
		writeError(w, http.StatusNotFound, "grocery entry not found")
		return nil, false
	}
	return entry, true
}
