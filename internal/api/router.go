package api

import (
	"log/slog"
	"net/http"
	"pickup-route-service/internal/api/handlers"
	"pickup-route-service/internal/domain"
	"pickup-route-service/internal/ports"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

// PlanDefaults apply to plan requests that omit capacity or depot.
type PlanDefaults struct {
	Capacity   float64
	Depot      domain.Coordinate
	BatchLimit int
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(source ports.StopSource, defaults PlanDefaults, logger *slog.Logger) http.Handler {
	stopHandler := &handlers.StopHandler{Source: source}
	planHandler := &handlers.PlanHandler{
		Source:          source,
		Validate:        validator.New(validator.WithRequiredStructEnabled()),
		DefaultCapacity: defaults.Capacity,
		DefaultDepot:    defaults.Depot,
		BatchLimit:      defaults.BatchLimit,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(loggingMiddleware(logger))

	r.Get("/health", handlers.Health)
	r.Get("/stops", stopHandler.List)
	r.Post("/plans", planHandler.Plan)
	r.Post("/plans/batch", planHandler.PlanBatch)

	return r
}
