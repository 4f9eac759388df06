// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Swissvotes dashboard API server.

The server imports the public Swissvotes dataset (all Swiss popular
votes with government, parliament, party, and canton positions) into a
relational database and serves read-only aggregate views for the
dashboard frontend.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): Database connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DATASET_URL (-dataset-url): Dataset CSV location
  - IMPORT_WORKERS (-import-workers): Concurrent row importers (default: 8)
  - REFRESH_INTERVAL_HOURS (-refresh-interval): Hours between
    scheduled re-imports, 0 disables (default: 24)
  - UPDATE_EXISTING (-update-existing): Upsert instead of
    insert-or-ignore (default: false)

A .env file in the working directory is loaded before flag parsing.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - ingest: Dataset download, row decomposition, persistence
  - mapping: Raw cell → typed value conversions
  - handlers: HTTP request handlers (votes, diagrams, meta, refresh)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and response types
  - db: Schema creation and the import marker
  - cliparse: Configuration parsing

On startup the server ensures the schema, kicks off a background
import, and begins serving immediately from whatever data is already
persisted. A ticker re-imports on the configured interval through the
same standalone path as POST /api/refresh.

See package documentation for each component.
*/
package main
