package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/scrabb-go/internal/api/handler"
	"github.com/mcoot/scrabb-go/internal/api/middleware"
	"github.com/mcoot/scrabb-go/internal/api/response"
	"github.com/mcoot/scrabb-go/internal/services/table"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Tables table.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	rulesHandler := handler.NewRulesHandler(cfg.Logger)
	tableHandler := handler.NewTableHandler(cfg.Tables)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RequestID)
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Stateless rules routes
	api.HandleFunc("/layout", rulesHandler.Layout).Methods(http.MethodGet)
	api.HandleFunc("/plays/check", rulesHandler.Check).Methods(http.MethodPost)
	api.HandleFunc("/plays/score", rulesHandler.Score).Methods(http.MethodPost)

	// Table routes
	api.HandleFunc("/tables", tableHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/tables/{id}", tableHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tables/{id}", tableHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/tables/{id}/plays", tableHandler.Play).Methods(http.MethodPost)
	api.HandleFunc("/tables/{id}/draw", tableHandler.Draw).Methods(http.MethodPost)
	api.HandleFunc("/tables/{id}/exchange", tableHandler.Exchange).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.Tables)).Methods(http.MethodGet)

	return r
}

func healthHandler(tables table.ServiceInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.HealthResponse{Status: "ok", Tables: tables.Len()})
	}
}
