package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/dukerupert/larder/internal/grocery"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/store"
)

const defaultSearchLimit = 10

type ItemHandler struct {
	itemStore *store.ItemStore
	logger    *slog.Logger
}

func NewItemHandler(is *store.ItemStore, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{itemStore: is, logger: logger}
}

// Search powers autocomplete when adding grocery entries and fridge items.
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusOK, []model.Item{})
		return
	}

	limit := defaultSearchLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 50 {
			limit = n
		}
	}

	items, err := h.itemStore.Search(query, limit)
	if err != nil {
		h.logger.Error("search items", "error", err)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type itemRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	DefaultUnit string `json:"default_unit"`
}

// Create adds a catalog item that grocery entries and fridge items can
// reference by id.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Category == "" {
		req.Category = grocery.Categorize(req.Name)
	}

	item, err := h.itemStore.Create(req.Name, req.Category, req.DefaultUnit)
	if err != nil {
		h.logger.Error("create item", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create item")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}
