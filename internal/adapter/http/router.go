package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/fundledger/fundledger/internal/adapter/http/handler"
	"github.com/fundledger/fundledger/internal/adapter/http/middleware"
	"github.com/fundledger/fundledger/internal/infrastructure/auth"
	"github.com/fundledger/fundledger/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	LedgerHandler      *handler.LedgerHandler
	TransactionHandler *handler.TransactionHandler
	DetailHandler      *handler.DetailHandler
	EvidenceHandler    *handler.EvidenceHandler
	AuthHandler        *handler.AuthHandler
	HealthHandler      *handler.HealthHandler
	IdempotencyStore   usecase.IdempotencyStore
	JWTManager         *auth.JWTManager
	RateLimiter        *middleware.RateLimiter
	Logger             zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery)
	r.Use(middleware.Metrics)

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and metrics endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Auth endpoints stay outside the authenticated scope
		if cfg.AuthHandler != nil {
			r.Post("/auth/register", cfg.AuthHandler.Register)
			r.Post("/auth/login", cfg.AuthHandler.Login)
		}

		r.Group(func(r chi.Router) {
			// Idempotency middleware for mutating requests
			if cfg.IdempotencyStore != nil {
				idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
				r.Use(idempotencyMiddleware.Wrap)
			}

			if cfg.JWTManager != nil {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))

				if cfg.AuthHandler != nil {
					r.Get("/auth/me", cfg.AuthHandler.GetCurrentUser)
				}
			}

			// Ledgers
			r.Route("/ledgers", func(r chi.Router) {
				r.Post("/", cfg.LedgerHandler.Create)
				r.Get("/", cfg.LedgerHandler.List)
				r.Get("/{id}", cfg.LedgerHandler.Get)
				r.Get("/{id}/details", cfg.DetailHandler.ListByLedger)
				r.Get("/{id}/consistency", cfg.LedgerHandler.CheckConsistency)
				r.Post("/{id}/transactions", cfg.TransactionHandler.Create)
			})

			// Ledger details
			r.Route("/ledger-details", func(r chi.Router) {
				r.Get("/{id}", cfg.DetailHandler.Get)
				r.Put("/{id}", cfg.TransactionHandler.Update)
				r.Delete("/{id}", cfg.TransactionHandler.Delete)

				r.Post("/{id}/receipts", cfg.EvidenceHandler.AddReceipts)
				r.Delete("/{id}/receipts/{receiptID}", cfg.EvidenceHandler.RemoveReceipt)
				r.Post("/{id}/documents", cfg.EvidenceHandler.AddDocuments)
				r.Delete("/{id}/documents/{documentID}", cfg.EvidenceHandler.RemoveDocument)
			})
		})
	})

	return r
}
