package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/larder/internal/handler"
	"github.com/dukerupert/larder/internal/middleware"
	"github.com/dukerupert/larder/internal/store"
	ws "github.com/dukerupert/larder/internal/websocket"
)

type Server struct {
	db             *sql.DB
	hub            *ws.Hub
	authH          *handler.AuthHandler
	fridgeH        *handler.FridgeHandler
	groceryH       *handler.GroceryHandler
	recipeH        *handler.RecipeHandler
	itemH          *handler.ItemHandler
	sessionStore   *store.SessionStore
	householdStore *store.HouseholdStore
	rateLimiter    *middleware.RateLimiter
	logger         *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := store.NewUserStore(db)
	householdStore := store.NewHouseholdStore(db)
	sessionStore := store.NewSessionStore(db)
	fridgeStore := store.NewFridgeStore(db)
	groceryStore := store.NewGroceryStore(db)
	recipeStore := store.NewRecipeStore(db)
	itemStore := store.NewItemStore(db)

	return &Server{
		db:             db,
		hub:            hub,
		authH:          handler.NewAuthHandler(userStore, householdStore, sessionStore, logger.With("component", "auth")),
		fridgeH:        handler.NewFridgeHandler(fridgeStore, hub, logger.With("component", "fridge")),
		groceryH:       handler.NewGroceryHandler(groceryStore, hub, logger.With("component", "grocery")),
		recipeH:        handler.NewRecipeHandler(recipeStore, fridgeStore, hub, logger.With("component", "recipe")),
		itemH:          handler.NewItemHandler(itemStore, logger.With("component", "item")),
		sessionStore:   sessionStore,
		householdStore: householdStore,
		rateLimiter:    middleware.NewRateLimiter(),
		logger:         logger,
	}
}

// SessionStore returns the session store for cleanup tasks.
func (s *Server) SessionStore() *store.SessionStore {
	return s.sessionStore
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("POST /api/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.sessionStore, s.householdStore)
	outerMux.Handle("/", authMiddleware(protectedMux))

	// Apply request logging middleware
	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	// Session routes
	mux.HandleFunc("POST /api/logout", s.authH.Logout)
	mux.HandleFunc("GET /api/me", s.authH.Me)

	// Fridge API routes
	mux.HandleFunc("GET /api/fridge-items", s.fridgeH.List)
	mux.HandleFunc("POST /api/fridge-items", s.fridgeH.Create)
	mux.HandleFunc("PUT /api/fridge-items/{id}", s.fridgeH.Update)
	mux.HandleFunc("DELETE /api/fridge-items/{id}", s.fridgeH.Delete)
	mux.HandleFunc("POST /api/fridge-items/{id}/consume", s.fridgeH.Consume)
	mux.HandleFunc("POST /api/fridge-items/{id}/discard", s.fridgeH.Discard)

	// Grocery API routes
	mux.HandleFunc("GET /api/grocery-entries", s.groceryH.List)
	mux.HandleFunc("POST /api/grocery-entries", s.groceryH.Create)
	mux.HandleFunc("PUT /api/grocery-entries/{id}", s.groceryH.Update)
	mux.HandleFunc("DELETE /api/grocery-entries/{id}", s.groceryH.Delete)
	mux.HandleFunc("POST /api/grocery-entries/{id}/toggle", s.groceryH.Toggle)
	mux.HandleFunc("POST /api/grocery-entries/dedupe", s.groceryH.Dedupe)

	// Recipe API routes
	mux.HandleFunc("GET /api/recipes", s.recipeH.List)
	mux.HandleFunc("POST /api/recipes", s.recipeH.Create)
	mux.HandleFunc("GET /api/recipes/{id}", s.recipeH.Get)
	mux.HandleFunc("PUT /api/recipes/{id}", s.recipeH.Update)
	mux.HandleFunc("DELETE /api/recipes/{id}", s.recipeH.Delete)
	mux.HandleFunc("GET /api/recipes/{id}/feasibility", s.recipeH.Feasibility)
	mux.HandleFunc("POST /api/recipes/{id}/cook", s.recipeH.Cook)

	// Item catalog API routes
	mux.HandleFunc("GET /api/items", s.itemH.Search)
	mux.HandleFunc("POST /api/items", s.itemH.Create)

	// WebSocket
	mux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket")))
}
