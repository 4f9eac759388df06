// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/handlers"
	"github.com/danielhkuo/swissvotes-dashboard/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votesHandler := handlers.NewVotesHandler(db, cfg)
	diagramsHandler := handlers.NewDiagramsHandler(db, cfg)
	metaHandler := handlers.NewMetaHandler(db, cfg)
	refreshHandler := handlers.NewRefreshHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Vote listing
	mux.HandleFunc("GET /api/swissvotes", middleware.WithLogging(votesHandler.List))

	// Diagram data
	mux.HandleFunc("GET /api/diagram/empfehlungen-vs-volk", middleware.WithLogging(diagramsHandler.RecommendationsVsPeople))
	mux.HandleFunc("GET /api/diagram/partei-repraesentation", middleware.WithLogging(diagramsHandler.PartyRepresentation))
	mux.HandleFunc("GET /api/diagram/heatmap-volk", middleware.WithLogging(diagramsHandler.HeatmapVsPeople))
	mux.HandleFunc("GET /api/diagram/kanton-repraesentation", middleware.WithLogging(diagramsHandler.CantonRepresentation))
	mux.HandleFunc("GET /api/diagram/trends-repraesentation", middleware.WithLogging(diagramsHandler.RepresentationTrends))
	mux.HandleFunc("GET /api/diagram/themenanalyse", middleware.WithLogging(diagramsHandler.TopicAnalysis))

	// Import metadata and trigger
	mux.HandleFunc("GET /api/last-update", middleware.WithLogging(metaHandler.LastUpdate))
	mux.HandleFunc("POST /api/refresh", middleware.WithLogging(refreshHandler.Trigger))

	// Unknown API routes respond with JSON, not the ServeMux HTML page
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Route not found")
	})

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("swissvotes-dashboard API v1"))
	})

	return mux
}
