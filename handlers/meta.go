// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/db"
	"github.com/danielhkuo/swissvotes-dashboard/middleware"
	"github.com/danielhkuo/swissvotes-dashboard/models"
)

type MetaHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMetaHandler(dbConn *sql.DB, cfg cliparse.Config) *MetaHandler {
	return &MetaHandler{db: dbConn, cfg: cfg}
}

// LastUpdate handles GET /api/last-update
// Returns 404 until the first successful import has run.
func (h *MetaHandler) LastUpdate(w http.ResponseWriter, r *http.Request) {
	value, err := db.LastUpdate(h.db)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		slog.Error("failed to query update marker", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LastUpdateResponse{LastModified: value})
}
