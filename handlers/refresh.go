// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/ingest"
	"github.com/danielhkuo/swissvotes-dashboard/middleware"
	"github.com/danielhkuo/swissvotes-dashboard/models"
)

type RefreshHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewRefreshHandler(db *sql.DB, cfg cliparse.Config) *RefreshHandler {
	return &RefreshHandler{db: db, cfg: cfg}
}

// Trigger handles POST /api/refresh
// Starts a full re-import in the background and returns immediately.
// The import is idempotent, so overlapping triggers are safe - they
// contend on the database's unique keys, not on shared state.
func (h *RefreshHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	go func() {
		if err := ingest.RunStandalone(h.cfg); err != nil {
			slog.Error("triggered refresh failed", "error", err)
		}
	}()

	middleware.JSONResponse(w, http.StatusAccepted, models.RefreshResponse{Status: "refresh started"})
}
