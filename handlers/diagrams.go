// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/middleware"
	"github.com/danielhkuo/swissvotes-dashboard/models"
)

type DiagramsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewDiagramsHandler(db *sql.DB, cfg cliparse.Config) *DiagramsHandler {
	return &DiagramsHandler{db: db, cfg: cfg}
}

// RecommendationsVsPeople handles GET /api/diagram/empfehlungen-vs-volk
// Bundesrat and Parlament positions next to the actual public result.
func (h *DiagramsHandler) RecommendationsVsPeople(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT s.datum, s.titel_kurz_d, s.titel_kurz_f, s.titel_kurz_e, s.vorlagen_id,
		       s.bundesrat_pos, s.parlament_pos, s.ja_stimmen_prozent, s.annahme
		FROM swissvotes s
		ORDER BY s.datum
	`)
	if err != nil {
		slog.Error("failed to query recommendations vs people", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.RecommendationVsPeople{}
	for rows.Next() {
		var e models.RecommendationVsPeople
		var brPos, bvPos *int
		if err := rows.Scan(
			&e.Datum, &e.TitelKurzD, &e.TitelKurzF, &e.TitelKurzE, &e.VorlagenID,
			&brPos, &bvPos, &e.JaStimmenProzent, &e.Annahme,
		); err != nil {
			slog.Error("failed to scan recommendations row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		e.BundesratEmpfehlung = models.PositionLabel(brPos)
		e.ParlamentEmpfehlung = models.PositionLabel(bvPos)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate recommendations rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// PartyRepresentation handles GET /api/diagram/partei-repraesentation
// Per-party recommendations next to vote outcomes, optionally filtered
// by partei and jahr query parameters.
func (h *DiagramsHandler) PartyRepresentation(w http.ResponseWriter, r *http.Request) {
	query := `
		SELECT e.partei_code, s.titel_kurz_d, s.titel_kurz_f, s.titel_kurz_e,
		       s.vorlagen_id, s.datum, s.annahme, e.empfehlung
		FROM partei_empfehlungen e
		JOIN swissvotes s ON s.vorlagen_id = e.vorlagen_id`

	var conditions []string
	var args []interface{}

	if partei := r.URL.Query().Get("partei"); partei != "" {
		args = append(args, partei)
		conditions = append(conditions, fmt.Sprintf("e.partei_code = $%d", len(args)))
	}
	if jahr := r.URL.Query().Get("jahr"); jahr != "" {
		if _, err := strconv.Atoi(jahr); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "jahr must be a year")
			return
		}
		args = append(args, jahr)
		// datum is ISO text, so the year is its first four characters
		conditions = append(conditions, fmt.Sprintf("substr(s.datum, 1, 4) = $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += "\n\t\tWHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += "\n\t\tORDER BY s.datum ASC"

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query party representation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.PartyRepresentation{}
	for rows.Next() {
		var e models.PartyRepresentation
		if err := rows.Scan(
			&e.ParteiCode, &e.TitelKurzD, &e.TitelKurzF, &e.TitelKurzE,
			&e.VorlagenID, &e.Datum, &e.Annahme, &e.Empfehlung,
		); err != nil {
			slog.Error("failed to scan party representation row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate party representation rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// HeatmapVsPeople handles GET /api/diagram/heatmap-volk
// One entry per actor (bundesrat, parlament, each party) per decided
// vote, with the actor's recommendation and the outcome.
func (h *DiagramsHandler) HeatmapVsPeople(w http.ResponseWriter, r *http.Request) {
	entries := []models.HeatmapEntry{}

	// Bundesrat and Parlament come from the vote rows themselves.
	voteRows, err := h.db.Query(`
		SELECT s.bundesrat_pos, s.parlament_pos, s.annahme, s.datum
		FROM swissvotes s
		WHERE s.annahme IS NOT NULL
		ORDER BY s.datum
	`)
	if err != nil {
		slog.Error("failed to query heatmap votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer voteRows.Close()

	for voteRows.Next() {
		var brPos, bvPos *int
		var annahme *bool
		var datum string
		if err := voteRows.Scan(&brPos, &bvPos, &annahme, &datum); err != nil {
			slog.Error("failed to scan heatmap vote row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries,
			models.HeatmapEntry{Akteur: "bundesrat", Empfehlung: models.PositionLabel(brPos), Annahme: annahme, Datum: datum},
			models.HeatmapEntry{Akteur: "parlament", Empfehlung: models.PositionLabel(bvPos), Annahme: annahme, Datum: datum},
		)
	}
	if err := voteRows.Err(); err != nil {
		slog.Error("failed to iterate heatmap vote rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	partyRows, err := h.db.Query(`
		SELECT e.partei_code, e.empfehlung, s.annahme, s.datum
		FROM partei_empfehlungen e
		JOIN swissvotes s ON s.vorlagen_id = e.vorlagen_id
		WHERE s.annahme IS NOT NULL
		ORDER BY s.datum
	`)
	if err != nil {
		slog.Error("failed to query heatmap parties", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer partyRows.Close()

	for partyRows.Next() {
		var e models.HeatmapEntry
		if err := partyRows.Scan(&e.Akteur, &e.Empfehlung, &e.Annahme, &e.Datum); err != nil {
			slog.Error("failed to scan heatmap party row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := partyRows.Err(); err != nil {
		slog.Error("failed to iterate heatmap party rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// CantonRepresentation handles GET /api/diagram/kanton-repraesentation?akteur=...
// How often the given actor's recommendation matched each canton's result.
func (h *DiagramsHandler) CantonRepresentation(w http.ResponseWriter, r *http.Request) {
	akteur := r.URL.Query().Get("akteur")
	if akteur == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "akteur query parameter is required")
		return
	}

	var query string
	var args []interface{}

	switch akteur {
	case "bundesrat", "parlament":
		posColumn := "s.bundesrat_pos"
		if akteur == "parlament" {
			posColumn = "s.parlament_pos"
		}
		query = fmt.Sprintf(`
			SELECT s.titel_kurz_d, s.titel_kurz_f, s.titel_kurz_e, s.vorlagen_id, s.datum,
			       k.kanton_code,
			       SUM(CASE WHEN (%[1]s = 1 AND k.annahme) OR (%[1]s = 2 AND NOT k.annahme)
			                THEN 1 ELSE 0 END) AS uebereinstimmungen,
			       COUNT(*) AS total
			FROM kanton_ergebnisse k
			JOIN swissvotes s ON k.vorlagen_id = s.vorlagen_id
			WHERE %[1]s IN (1, 2)
			GROUP BY k.kanton_code, s.titel_kurz_d, s.titel_kurz_f, s.titel_kurz_e, s.vorlagen_id, s.datum
		`, posColumn)
	default:
		// Treat as party
		query = `
			SELECT s.titel_kurz_d, s.titel_kurz_f, s.titel_kurz_e, s.vorlagen_id, s.datum,
			       k.kanton_code,
			       SUM(CASE WHEN (e.empfehlung = 'Ja' AND k.annahme) OR (e.empfehlung = 'Nein' AND NOT k.annahme)
			                THEN 1 ELSE 0 END) AS uebereinstimmungen,
			       COUNT(*) AS total
			FROM kanton_ergebnisse k
			JOIN swissvotes s ON k.vorlagen_id = s.vorlagen_id
			JOIN partei_empfehlungen e ON e.vorlagen_id = s.vorlagen_id
			WHERE e.partei_code = $1 AND e.empfehlung IN ('Ja', 'Nein')
			GROUP BY k.kanton_code, s.titel_kurz_d, s.titel_kurz_f, s.titel_kurz_e, s.vorlagen_id, s.datum
		`
		args = append(args, akteur)
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query canton representation", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.CantonAgreement{}
	for rows.Next() {
		var e models.CantonAgreement
		if err := rows.Scan(
			&e.TitelKurzD, &e.TitelKurzF, &e.TitelKurzE, &e.VorlagenID, &e.Datum,
			&e.KantonCode, &e.Uebereinstimmungen, &e.Total,
		); err != nil {
			slog.Error("failed to scan canton representation row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate canton representation rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// RepresentationTrends handles GET /api/diagram/trends-repraesentation
// Yearly agreement counts for the Bundesrat and every party.
func (h *DiagramsHandler) RepresentationTrends(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT substr(s.datum, 1, 4) AS jahr,
		       'bundesrat' AS akteur,
		       SUM(CASE WHEN (s.bundesrat_pos = 1 AND s.annahme) OR (s.bundesrat_pos = 2 AND NOT s.annahme)
		                THEN 1 ELSE 0 END) AS uebereinstimmungen,
		       COUNT(*) AS total
		FROM swissvotes s
		WHERE s.bundesrat_pos IN (1, 2)
		GROUP BY substr(s.datum, 1, 4)

		UNION ALL

		SELECT substr(s.datum, 1, 4) AS jahr,
		       e.partei_code AS akteur,
		       SUM(CASE WHEN (e.empfehlung = 'Ja' AND s.annahme) OR (e.empfehlung = 'Nein' AND NOT s.annahme)
		                THEN 1 ELSE 0 END) AS uebereinstimmungen,
		       COUNT(*) AS total
		FROM partei_empfehlungen e
		JOIN swissvotes s ON s.vorlagen_id = e.vorlagen_id
		WHERE e.empfehlung IN ('Ja', 'Nein')
		GROUP BY substr(s.datum, 1, 4), e.partei_code

		ORDER BY jahr, akteur
	`)
	if err != nil {
		slog.Error("failed to query representation trends", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	entries := []models.TrendEntry{}
	for rows.Next() {
		var e models.TrendEntry
		if err := rows.Scan(&e.Jahr, &e.Akteur, &e.Uebereinstimmungen, &e.Total); err != nil {
			slog.Error("failed to scan trend row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate trend rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}

// TopicAnalysis handles GET /api/diagram/themenanalyse
// Votes grouped by policy area with positions and party recommendations.
func (h *DiagramsHandler) TopicAnalysis(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT s.vorlagen_id, t.oberkategorie, s.annahme,
		       s.bundesrat_pos, s.parlament_pos,
		       e.partei_code, e.empfehlung
		FROM swissvotes s
		JOIN abstimmung_themen t ON s.vorlagen_id = t.vorlagen_id
		LEFT JOIN partei_empfehlungen e ON s.vorlagen_id = e.vorlagen_id
		ORDER BY t.oberkategorie, s.datum, s.vorlagen_id, e.partei_code
	`)
	if err != nil {
		slog.Error("failed to query topic analysis", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	// Regroup the joined rows per (vote, topic). A vote with two codes
	// under the same Oberkategorie must appear once, so party stances
	// are deduplicated per group.
	entries := []models.TopicAnalysis{}
	index := map[string]int{}
	seenStance := map[string]bool{}
	for rows.Next() {
		var vorlagenID int
		var thema string
		var annahme *bool
		var brPos, bvPos *int
		var partei, empfehlung sql.NullString
		if err := rows.Scan(&vorlagenID, &thema, &annahme, &brPos, &bvPos, &partei, &empfehlung); err != nil {
			slog.Error("failed to scan topic analysis row", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		groupKey := fmt.Sprintf("%d|%s", vorlagenID, thema)
		i, seen := index[groupKey]
		if !seen {
			entries = append(entries, models.TopicAnalysis{
				VorlagenID:         vorlagenID,
				Thema:              thema,
				Annahme:            annahme,
				BundesratPos:       models.PositionLabel(brPos),
				ParlamentPos:       models.PositionLabel(bvPos),
				ParteiEmpfehlungen: []models.PartyStance{},
			})
			i = len(entries) - 1
			index[groupKey] = i
		}
		if partei.Valid {
			stanceKey := groupKey + "|" + partei.String
			if !seenStance[stanceKey] {
				seenStance[stanceKey] = true
				entries[i].ParteiEmpfehlungen = append(entries[i].ParteiEmpfehlungen, models.PartyStance{
					Partei:     partei.String,
					Empfehlung: empfehlung.String,
				})
			}
		}
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate topic analysis rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, entries)
}
