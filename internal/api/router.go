package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/wdaytrack/Insider-Tracker-Backend/internal/api/middleware"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/config"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/snapshot"
)

// NewRouter creates and configures the HTTP router
func NewRouter(store *snapshot.Store, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(store)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		transactionHandler := handlers.NewTransactionHandler(store)
		r.Get("/transactions", transactionHandler.Transactions)
		r.Get("/stats", transactionHandler.Stats)
		r.Get("/executives", transactionHandler.Executives)

		ownershipHandler := handlers.NewOwnershipHandler(store, cfg.Charts.TableTopK)
		r.Get("/ownership", ownershipHandler.Summary)

		r.Route("/charts", func(r chi.Router) {
			chartHandler := handlers.NewChartHandler(store, cfg.Charts)
			r.Get("/price-events", chartHandler.PriceEvents)
			r.Get("/ownership", chartHandler.Ownership)
			r.Get("/cluster", chartHandler.Cluster)
		})

		r.Route("/snapshot", func(r chi.Router) {
			r.Use(custommiddleware.APIKeyMiddleware)
			refreshHandler := handlers.NewRefreshHandler(store)
			r.Post("/refresh", refreshHandler.Refresh)
		})
	})

	return r
}
