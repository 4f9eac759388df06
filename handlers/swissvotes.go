// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/middleware"
	"github.com/danielhkuo/swissvotes-dashboard/models"
)

// maxListedVotes caps the /api/swissvotes listing.
const maxListedVotes = 1000

type VotesHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotesHandler(db *sql.DB, cfg cliparse.Config) *VotesHandler {
	return &VotesHandler{db: db, cfg: cfg}
}

// List handles GET /api/swissvotes
// Returns the latest votes with their aggregated party recommendations.
func (h *VotesHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT s.vorlagen_id, s.datum, s.titel_kurz_d, s.stichwort,
		       s.annahme, s.ja_stimmen_prozent, s.stimmbeteiligung,
		       e.partei_code, e.empfehlung
		FROM swissvotes s
		LEFT JOIN partei_empfehlungen e ON s.vorlagen_id = e.vorlagen_id
		ORDER BY s.datum DESC, s.vorlagen_id DESC, e.partei_code
	`)
	if err != nil {
		slog.Error("failed to query swissvotes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	// One joined row per (vote, recommendation); regroup per vote while
	// preserving the datum ordering.
	summaries := []models.VoteSummary{}
	index := map[int]int{}
	for rows.Next() {
		var s models.VoteSummary
		var partei, empfehlung sql.NullString
		if err := rows.Scan(
			&s.VorlagenID, &s.Datum, &s.TitelKurzD, &s.Stichwort,
			&s.Annahme, &s.JaStimmenProzent, &s.Stimmbeteiligung,
			&partei, &empfehlung,
		); err != nil {
			slog.Error("failed to scan swissvotes row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		i, seen := index[s.VorlagenID]
		if !seen {
			if len(summaries) >= maxListedVotes {
				break
			}
			s.Empfehlungen = []models.PartyStance{}
			summaries = append(summaries, s)
			i = len(summaries) - 1
			index[s.VorlagenID] = i
		}
		if partei.Valid {
			summaries[i].Empfehlungen = append(summaries[i].Empfehlungen, models.PartyStance{
				Partei:     partei.String,
				Empfehlung: empfehlung.String,
			})
		}
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate swissvotes rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}
