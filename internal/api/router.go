package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/DAILY622/Cloud-wealth-mining/internal/api/handler"
	"github.com/DAILY622/Cloud-wealth-mining/internal/api/middleware"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/auth"
	"github.com/DAILY622/Cloud-wealth-mining/internal/services/session"
	"github.com/DAILY622/Cloud-wealth-mining/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	SessionService session.ServiceInterface
	HubManager     *sse.HubManager
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	minerHandler := handler.NewMinerHandler(cfg.SessionService)
	eventsHandler := handler.NewEventsHandler(cfg.HubManager)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Miner routes (all require auth)
	miner := api.PathPrefix("/miner").Subrouter()
	miner.Use(authMiddleware)
	miner.HandleFunc("", minerHandler.GetMiner).Methods(http.MethodGet)
	miner.HandleFunc("/mine", minerHandler.Mine).Methods(http.MethodPost)
	miner.HandleFunc("/auto-mining", minerHandler.SetAutoMining).Methods(http.MethodPost)

	// Catalog routes (all require auth)
	achievements := api.PathPrefix("/achievements").Subrouter()
	achievements.Use(authMiddleware)
	achievements.HandleFunc("", minerHandler.GetAchievements).Methods(http.MethodGet)

	upgrades := api.PathPrefix("/upgrades").Subrouter()
	upgrades.Use(authMiddleware)
	upgrades.HandleFunc("", minerHandler.GetUpgrades).Methods(http.MethodGet)
	upgrades.HandleFunc("/{id}/purchase", minerHandler.PurchaseUpgrade).Methods(http.MethodPost)

	// SSE event stream (requires auth; token via header or query param)
	events := api.PathPrefix("/events").Subrouter()
	events.Use(authMiddleware)
	events.HandleFunc("", eventsHandler.Stream).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
