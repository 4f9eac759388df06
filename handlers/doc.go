// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the dashboard API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - VotesHandler: Vote listing with aggregated recommendations
  - DiagramsHandler: Aggregate views backing the dashboard diagrams
  - MetaHandler: Import metadata (last-update marker)
  - RefreshHandler: Manual re-import trigger

Handlers are created via constructor functions that accept *sql.DB and Config:

	votesHandler := handlers.NewVotesHandler(db, cfg)

# Read Endpoints

All query endpoints are GET and read-only:

	GET /api/swissvotes                      → List
	GET /api/diagram/empfehlungen-vs-volk    → RecommendationsVsPeople
	GET /api/diagram/partei-repraesentation  → PartyRepresentation
	GET /api/diagram/heatmap-volk            → HeatmapVsPeople
	GET /api/diagram/kanton-repraesentation  → CantonRepresentation
	GET /api/diagram/trends-repraesentation  → RepresentationTrends
	GET /api/diagram/themenanalyse           → TopicAnalysis
	GET /api/last-update                     → LastUpdate

They serve whatever is currently persisted; a failed import never
affects them beyond a stale last-update marker.

# Aggregation

Rows are aggregated in Go after plain joins (position decoding via
models.PositionLabel, per-vote recommendation grouping). The SQL
itself sticks to constructs both supported engines share.

# Refresh Trigger

	POST /api/refresh → Trigger

Starts ingest.RunStandalone in the background and responds 202. The
import is idempotent, so repeated triggers are harmless.
*/
package handlers
