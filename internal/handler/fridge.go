package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/fridge"
	"github.com/dukerupert/larder/internal/grocery"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/store"
	"github.com/dukerupert/larder/internal/websocket"
)

type FridgeHandler struct {
	fridgeStore *store.FridgeStore
	hub         *websocket.Hub
	logger      *slog.Logger
}

func NewFridgeHandler(fs *store.FridgeStore, hub *websocket.Hub, logger *slog.Logger) *FridgeHandler {
	return &FridgeHandler{fridgeStore: fs, hub: hub, logger: logger}
}

type fridgeItemRequest struct {
	ItemID        string     `json:"item_id"`
	Name          string     `json:"name"`
	Category      string     `json:"category"`
	Quantity      float64    `json:"quantity"`
	Unit          string     `json:"unit"`
	Location      string     `json:"location"`
	PurchasePrice float64    `json:"purchase_price"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (h *FridgeHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.fridgeStore.ListActive(auth.HouseholdID(r.Context()))
	if err != nil {
		h.logger.Error("list fridge items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list fridge items")
		return
	}
	if items == nil {
		items = []model.FridgeItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *FridgeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req fridgeItemRequest
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
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	// Fill in what the client left out: category from the name, expiry
	// from the category.
	if req.Category == "" {
		req.Category = grocery.Categorize(req.Name)
	}
	if req.ExpiresAt == nil {
		req.ExpiresAt = grocery.DefaultExpiry(req.Category, time.Now())
	}
	purchaseDate := time.Now()
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	householdID := auth.HouseholdID(r.Context())
	item, err := h.fridgeStore.Create(model.FridgeItem{
		HouseholdID:   householdID,
		ItemID:        req.ItemID,
		Name:          req.Name,
		Category:      req.Category,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Location:      req.Location,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  purchaseDate,
		ExpiresAt:     req.ExpiresAt,
	})
	if err != nil {
		h.logger.Error("create fridge item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create fridge item")
		return
	}

	h.hub.Broadcast(householdID, websocket.NewMessage("fridge_item", "created", item.ID, nil))
	writeJSON(w, http.StatusCreated, item)
}

func (h *FridgeHandler) Update(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	var req fridgeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be positive")
		return
	}

	item.Quantity = req.Quantity
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.ExpiresAt != nil {
		item.ExpiresAt = req.ExpiresAt
	}

	updated, err := h.fridgeStore.Save(*item)
	if err != nil {
		h.logger.Error("update fridge item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update fridge item")
		return
	}

	h.hub.Broadcast(item.HouseholdID, websocket.NewMessage("fridge_item", "updated", updated.ID, nil))
	writeJSON(w, http.StatusOK, updated)
}

func (h *FridgeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	if err := h.fridgeStore.Delete(item.ID); err != nil {
		h.logger.Error("delete fridge item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete fridge item")
		return
	}

	h.hub.Broadcast(item.HouseholdID, websocket.NewMessage("fridge_item", "deleted", item.ID, nil))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type consumeRequest struct {
	Amount float64 `json:"amount"`
}

// Consume deducts an amount (in the item's own unit) from a fridge item,
// marking it used when it runs out.
func (h *FridgeHandler) Consume(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	var req consumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Amount <= 0 {
		writeError(w, http.StatusBadRequest, "amount must be positive")
		return
	}

	mutated, outcome := fridge.Consume(*item, req.Amount)
	updated, err := h.fridgeStore.Save(mutated)
	if err != nil {
		h.logger.Error("consume fridge item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update fridge item")
		return
	}

	h.hub.Broadcast(item.HouseholdID, websocket.NewMessage("fridge_item", "consumed", updated.ID, map[string]any{
		"outcome": outcome.String(),
	}))
	writeJSON(w, http.StatusOK, map[string]any{
		"item":    updated,
		"outcome": outcome.String(),
	})
}

type discardRequest struct {
	Percent float64 `json:"percent"`
}

// Discard throws away a percentage of the item's current quantity and
// records it as waste.
func (h *FridgeHandler) Discard(w http.ResponseWriter, r *http.Request) {
	item, ok := h.ownedItem(w, r)
	if !ok {
		return
	}

	var req discardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	mutated, outcome := fridge.Discard(*item, req.Percent)
	if outcome == fridge.Unchanged {
		writeError(w, http.StatusBadRequest, "percent must be between 0 and 100")
		return
	}

	updated, err := h.fridgeStore.Save(mutated)
	if err != nil {
		h.logger.Error("discard fridge item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update fridge item")
		return
	}

	h.hub.Broadcast(item.HouseholdID, websocket.NewMessage("fridge_item", "discarded", updated.ID, map[string]any{
		"outcome": outcome.String(),
	}))
	writeJSON(w, http.StatusOK, map[string]any{
		"item":    updated,
		"outcome": outcome.String(),
	})
}

// ownedItem loads the path item and checks it belongs to the caller's
// household. It writes the error response itself on failure.
func (h *FridgeHandler) ownedItem(w http.ResponseWriter, r *http.Request) (*model.FridgeItem, bool) {
	id := idParam(r)
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}

	item, err := h.fridgeStore.GetByID(id)
	if err != nil {
		h.logger.Error("get fridge item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get fridge item")
		return nil, false
	}
	if item == nil || item.HouseholdID != auth.HouseholdID(r.Context()) {
		writeError(w, http.StatusNotFound, "fridge item not found")
		return nil, false
	}
	return item, true
}
