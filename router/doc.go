// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the dashboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health

Votes:

	GET /api/swissvotes - Latest votes with party recommendations

Diagram data (public, read-only):

	GET /api/diagram/empfehlungen-vs-volk   - Positions vs public result
	GET /api/diagram/partei-repraesentation - Party stances over time
	GET /api/diagram/heatmap-volk           - Actor/outcome alignment
	GET /api/diagram/kanton-repraesentation - Per-canton agreement (?akteur=)
	GET /api/diagram/trends-repraesentation - Yearly agreement trends
	GET /api/diagram/themenanalyse          - Per-topic rollup

Import:

	GET  /api/last-update - Timestamp of the last successful import
	POST /api/refresh     - Trigger a background re-import

Unknown /api/ paths return a JSON 404; method mismatches on registered
paths get the ServeMux's 405.

# Handler Initialization

The router creates handler instances with dependency injection:

	votesHandler := handlers.NewVotesHandler(db, cfg)
	diagramsHandler := handlers.NewDiagramsHandler(db, cfg)
	metaHandler := handlers.NewMetaHandler(db, cfg)
	refreshHandler := handlers.NewRefreshHandler(db, cfg)

All handlers receive the database connection and configuration.
*/
package router
