// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"database/sql"
	"fmt"

	"github.com/danielhkuo/swissvotes-dashboard/models"
)

// Writer persists decompositions with idempotent inserts. The vote row
// always goes in before its dependents because of the foreign keys.
// Statements are independent, not wrapped in a transaction: a failure
// mid-row leaves earlier records of that row in place.
type Writer struct {
	db             *sql.DB
	updateExisting bool
}

func NewWriter(db *sql.DB, updateExisting bool) *Writer {
	return &Writer{db: db, updateExisting: updateExisting}
}

const insertVote = `
	INSERT INTO swissvotes (vorlagen_id, datum, titel_kurz_d, titel_kurz_f, titel_kurz_e,
	                        titel_off_d, titel_off_f, stichwort, swissvoteslink,
	                        bundesrat_pos, parlament_pos, annahme,
	                        ja_stimmen_prozent, stimmbeteiligung)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (vorlagen_id) DO NOTHING`

const upsertVote = `
	INSERT INTO swissvotes (vorlagen_id, datum, titel_kurz_d, titel_kurz_f, titel_kurz_e,
	                        titel_off_d, titel_off_f, stichwort, swissvoteslink,
	                        bundesrat_pos, parlament_pos, annahme,
	                        ja_stimmen_prozent, stimmbeteiligung)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (vorlagen_id) DO UPDATE SET
		datum = excluded.datum,
		titel_kurz_d = excluded.titel_kurz_d,
		titel_kurz_f = excluded.titel_kurz_f,
		titel_kurz_e = excluded.titel_kurz_e,
		titel_off_d = excluded.titel_off_d,
		titel_off_f = excluded.titel_off_f,
		stichwort = excluded.stichwort,
		swissvoteslink = excluded.swissvoteslink,
		bundesrat_pos = excluded.bundesrat_pos,
		parlament_pos = excluded.parlament_pos,
		annahme = excluded.annahme,
		ja_stimmen_prozent = excluded.ja_stimmen_prozent,
		stimmbeteiligung = excluded.stimmbeteiligung`

const insertRecommendation = `
	INSERT INTO partei_empfehlungen (vorlagen_id, partei_code, empfehlung)
	VALUES ($1, $2, $3)
	ON CONFLICT (vorlagen_id, partei_code) DO NOTHING`

const upsertRecommendation = `
	INSERT INTO partei_empfehlungen (vorlagen_id, partei_code, empfehlung)
	VALUES ($1, $2, $3)
	ON CONFLICT (vorlagen_id, partei_code) DO UPDATE SET empfehlung = excluded.empfehlung`

const insertCantonResult = `
	INSERT INTO kanton_ergebnisse (vorlagen_id, kanton_code, ja_prozent, annahme)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (vorlagen_id, kanton_code) DO NOTHING`

const upsertCantonResult = `
	INSERT INTO kanton_ergebnisse (vorlagen_id, kanton_code, ja_prozent, annahme)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (vorlagen_id, kanton_code) DO UPDATE SET
		ja_prozent = excluded.ja_prozent,
		annahme = excluded.annahme`

// All three topic columns form the identity, so there is nothing to
// update on conflict.
const insertTopic = `
	INSERT INTO abstimmung_themen (vorlagen_id, oberkategorie, unterkategorie)
	VALUES ($1, $2, $3)
	ON CONFLICT (vorlagen_id, oberkategorie, unterkategorie) DO NOTHING`

// Write persists one decomposition in dependency order. It stops at
// the first failed statement so dependents are never written without
// their vote row.
func (w *Writer) Write(dec models.Decomposition) error {
	v := dec.Vote

	voteSQL := insertVote
	if w.updateExisting {
		voteSQL = upsertVote
	}
	_, err := w.db.Exec(voteSQL,
		v.VorlagenID, v.Datum, v.TitelKurzD, v.TitelKurzF, v.TitelKurzE,
		v.TitelOffD, v.TitelOffF, v.Stichwort, v.Swissvoteslink,
		v.BundesratPos, v.ParlamentPos, v.Annahme,
		v.JaStimmenProzent, v.Stimmbeteiligung,
	)
	if err != nil {
		return fmt.Errorf("insert vote %d: %w", v.VorlagenID, err)
	}

	recSQL := insertRecommendation
	if w.updateExisting {
		recSQL = upsertRecommendation
	}
	for _, rec := range dec.Parties {
		if _, err := w.db.Exec(recSQL, rec.VorlagenID, rec.ParteiCode, rec.Empfehlung); err != nil {
			return fmt.Errorf("insert recommendation %d/%s: %w", rec.VorlagenID, rec.ParteiCode, err)
		}
	}

	cantonSQL := insertCantonResult
	if w.updateExisting {
		cantonSQL = upsertCantonResult
	}
	for _, result := range dec.Cantons {
		if _, err := w.db.Exec(cantonSQL, result.VorlagenID, result.KantonCode, result.JaProzent, result.Annahme); err != nil {
			return fmt.Errorf("insert canton result %d/%s: %w", result.VorlagenID, result.KantonCode, err)
		}
	}

	for _, topic := range dec.Topics {
		if _, err := w.db.Exec(insertTopic, topic.VorlagenID, topic.Oberkategorie, topic.Unterkategorie); err != nil {
			return fmt.Errorf("insert topic %d/%s: %w", topic.VorlagenID, topic.Unterkategorie, err)
		}
	}

	return nil
}
