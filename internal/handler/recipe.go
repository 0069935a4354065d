package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/dukerupert/larder/internal/auth"
	"github.com/dukerupert/larder/internal/cooking"
	"github.com/dukerupert/larder/internal/fridge"
	"github.com/dukerupert/larder/internal/model"
	"github.com/dukerupert/larder/internal/store"
	"github.com/dukerupert/larder/internal/websocket"
)

// Leftover shelf life depends on what went into the pot.
const (
	leftoverExpiryMeat    = 3 * 24 * time.Hour
	leftoverExpiryDefault = 5 * 24 * time.Hour
)

type RecipeHandler struct {
	recipeStore *store.RecipeStore
	fridgeStore *store.FridgeStore
	hub         *websocket.Hub
	logger      *slog.Logger
}

func NewRecipeHandler(rs *store.RecipeStore, fs *store.FridgeStore, hub *websocket.Hub, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{recipeStore: rs, fridgeStore: fs, hub: hub, logger: logger}
}

type ingredientRequest struct {
	ItemID   string  `json:"item_id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type recipeRequest struct {
	Name        string              `json:"name"`
	Servings    int                 `json:"servings"`
	IsPublic    bool                `json:"is_public"`
	Ingredients []ingredientRequest `json:"ingredients"`
}

func (req *recipeRequest) toModel(householdID string) (model.Recipe, string) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return model.Recipe{}, "name is required"
	}
	if req.Servings <= 0 {
		req.Servings = 1
	}

	r := model.Recipe{
		HouseholdID: householdID,
		Name:        req.Name,
		Servings:    req.Servings,
		IsPublic:    req.IsPublic,
	}
	for _, ing := range req.Ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			return model.Recipe{}, "ingredient name is required"
		}
		if ing.Quantity <= 0 {
			return model.Recipe{}, "ingredient quantity must be positive"
		}
		r.Ingredients = append(r.Ingredients, model.Ingredient{
			ItemID:   ing.ItemID,
			Name:     name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
		})
	}
	return r, ""
}

func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.recipeStore.List(auth.HouseholdID(r.Context()))
	if err != nil {
		h.logger.Error("list recipes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list recipes")
		return
	}
	if recipes == nil {
		recipes = []model.Recipe{}
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, recipe)
}

func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	householdID := auth.HouseholdID(r.Context())
	recipe, msg := req.toModel(householdID)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.recipeStore.Create(recipe)
	if err != nil {
		h.logger.Error("create recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create recipe")
		return
	}

	h.hub.Broadcast(householdID, websocket.NewMessage("recipe", "created", created.ID, nil))
	writeJSON(w, http.StatusCreated, created)
}

func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}
	if existing.HouseholdID != auth.HouseholdID(r.Context()) {
		writeError(w, http.StatusForbidden, "recipe belongs to another household")
		return
	}

	var req recipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	recipe, msg := req.toModel(existing.HouseholdID)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	recipe.ID = existing.ID

	updated, err := h.recipeStore.Update(recipe)
	if err != nil {
		h.logger.Error("update recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update recipe")
		return
	}

	h.hub.Broadcast(existing.HouseholdID, websocket.NewMessage("recipe", "updated", updated.ID, nil))
	writeJSON(w, http.StatusOK, updated)
}

func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}
	if recipe.HouseholdID != auth.HouseholdID(r.Context()) {
		writeError(w, http.StatusForbidden, "recipe belongs to another household")
		return
	}

	if err := h.recipeStore.Delete(recipe.ID); err != nil {
		h.logger.Error("delete recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete recipe")
		return
	}

	h.hub.Broadcast(recipe.HouseholdID, websocket.NewMessage("recipe", "deleted", recipe.ID, nil))
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Feasibility reports how many servings of the recipe the household's
// current stock supports, and what runs out first.
func (h *RecipeHandler) Feasibility(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}

	// Feasibility is always judged against the caller's own stock, even
	// for public recipes from other households.
	stock, err := h.fridgeStore.ListActive(auth.HouseholdID(r.Context()))
	if err != nil {
		h.logger.Error("list fridge items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load stock")
		return
	}

	writeJSON(w, http.StatusOK, cooking.MaxServings(*recipe, stock))
}

type cookRequest struct {
	Servings int `json:"servings"`
}

type cookResponse struct {
	Consumptions []cooking.Consumption `json:"consumptions"`
	TotalCost    float64               `json:"total_cost"`
	Leftovers    *model.FridgeItem     `json:"leftovers,omitempty"`
}

// Cook deducts the recipe's scaled ingredients from fridge stock and adds a
// leftovers item priced at cost per serving. Ingredients that cannot be
// matched are reported as skipped, never as a failure.
func (h *RecipeHandler) Cook(w http.ResponseWriter, r *http.Request) {
	recipe, ok := h.ownedRecipe(w, r)
	if !ok {
		return
	}

	var req cookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	servings := req.Servings
	if servings <= 0 {
		servings = recipe.Servings
	}
	if servings <= 0 {
		servings = 1
	}

	householdID := auth.HouseholdID(r.Context())
	stock, err := h.fridgeStore.ListActive(householdID)
	if err != nil {
		h.logger.Error("list fridge items", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load stock")
		return
	}

	byID := make(map[string]model.FridgeItem, len(stock))
	for _, it := range stock {
		byID[it.ID] = it
	}

	plan := cooking.Plan(*recipe, servings, stock)

	var totalCost float64
	meatConsumed := false
	for _, c := range plan {
		if c.Skipped {
			continue
		}
		item, found := byID[c.ItemID]
		if !found {
			continue
		}

		if item.InitialQuantity > 0 {
			totalCost += item.PurchasePrice * (c.Amount / item.InitialQuantity)
		}
		if item.Category == "Meat" {
			meatConsumed = true
		}

		mutated, _ := fridge.Consume(item, c.Amount)
		if _, err := h.fridgeStore.Save(mutated); err != nil {
			h.logger.Error("apply cook consumption", "item_id", item.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "failed to update stock")
			return
		}
	}

	shelfLife := leftoverExpiryDefault
	if meatConsumed {
		shelfLife = leftoverExpiryMeat
	}
	expiresAt := time.Now().Add(shelfLife)

	leftovers, err := h.fridgeStore.Create(model.FridgeItem{
		HouseholdID:   householdID,
		Name:          "Leftovers: " + recipe.Name,
		Category:      "Leftovers",
		Quantity:      float64(servings),
		Unit:          "serving",
		Location:      "fridge",
		PurchasePrice: math.Round(totalCost/float64(servings)*100) / 100,
		PurchaseDate:  time.Now(),
		ExpiresAt:     &expiresAt,
	})
	if err != nil {
		h.logger.Error("create leftovers", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to create leftovers")
		return
	}

	h.hub.Broadcast(householdID, websocket.NewMessage("recipe", "cooked", recipe.ID, map[string]any{
		"servings": servings,
	}))
	writeJSON(w, http.StatusOK, cookResponse{
		Consumptions: plan,
		TotalCost:    math.Round(totalCost*100) / 100,
		Leftovers:    leftovers,
	})
}

func (h *RecipeHandler) ownedRecipe(w http.ResponseWriter, r *http.Request) (*model.Recipe, bool) {
	id := idParam(r)
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}

	recipe, err := h.recipeStore.GetByID(id)
	if err != nil {
		h.logger.Error("get recipe", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get recipe")
		return nil, false
	}
	if recipe == nil {
		writeError(w, http.StatusNotFound, "recipe not found")
		return nil, false
	}
	if recipe.HouseholdID != auth.HouseholdID(r.Context()) && !recipe.IsPublic {
		writeError(w, http.StatusNotFound, "recipe not found")
		return nil, false
	}
	return recipe, true
}
