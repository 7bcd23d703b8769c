package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/m-mizutani/ctxlog"

	"github.com/bdm-lab/mediascope/pkg/usecase"
)

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server exposing the incident API
func NewServer(
	ctx context.Context,
	addr string,
	incidentUC usecase.Incident,
	statsUC *usecase.StatsUseCase,
) *Server {
	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	handler := NewIncidentHandler(incidentUC, statsUC)

	// Health check
	router.Get("/health", handleHealth)

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Route("/incidents", func(r chi.Router) {
			r.Get("/", handler.HandleList)
			r.Post("/", handler.HandleCreate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.HandleGet)
				r.Put("/status", handler.HandleUpdateStatus)
				r.Post("/actions", handler.HandleAddAction)
			})
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/", handler.HandleStats)
			r.Get("/materials", handler.HandleTopMaterials)
			r.Get("/platforms", handler.HandleTopPlatforms)
		})
	})

	// The dashboard UI is an external collaborator; the root path only
	// points at the API
	router.Get("/", handleHome)

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "mediascope",
	}); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode health response", "error", err)
	}
}

func handleHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>MediaScope</title></head>
<body>
<h1>MediaScope</h1>
<p>Incident tracking API. See /api/incidents and /api/stats.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write home response", "error", err)
	}
}
