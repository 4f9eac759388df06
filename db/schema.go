// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL below runs unchanged on PostgreSQL and SQLite. That rules out
// SERIAL columns (natural composite keys are used instead, matching the
// entity identities) and DATE/EXTRACT (datum is ISO-8601 text, so year
// filtering is substr(datum, 1, 4) in both engines).
const schema = `
-- Votes
CREATE TABLE IF NOT EXISTS swissvotes (
    vorlagen_id INT PRIMARY KEY,
    datum TEXT,
    titel_kurz_d TEXT,
    titel_kurz_f TEXT,
    titel_kurz_e TEXT,
    titel_off_d TEXT,
    titel_off_f TEXT,
    stichwort TEXT,
    swissvoteslink TEXT,
    bundesrat_pos INT,
    parlament_pos INT,
    annahme BOOLEAN,
    ja_stimmen_prozent FLOAT,
    stimmbeteiligung FLOAT
);

CREATE INDEX IF NOT EXISTS idx_swissvotes_datum ON swissvotes(datum);

-- Party recommendations
CREATE TABLE IF NOT EXISTS partei_empfehlungen (
    vorlagen_id INT NOT NULL REFERENCES swissvotes(vorlagen_id),
    partei_code TEXT NOT NULL,
    empfehlung TEXT NOT NULL,
    PRIMARY KEY (vorlagen_id, partei_code)
);

CREATE INDEX IF NOT EXISTS idx_empfehlungen_partei ON partei_empfehlungen(partei_code);

-- Canton results
CREATE TABLE IF NOT EXISTS kanton_ergebnisse (
    vorlagen_id INT NOT NULL REFERENCES swissvotes(vorlagen_id),
    kanton_code TEXT NOT NULL,
    ja_prozent FLOAT NOT NULL,
    annahme BOOLEAN NOT NULL,
    PRIMARY KEY (vorlagen_id, kanton_code)
);

-- Topic assignments
CREATE TABLE IF NOT EXISTS abstimmung_themen (
    vorlagen_id INT NOT NULL REFERENCES swissvotes(vorlagen_id),
    oberkategorie TEXT NOT NULL,
    unterkategorie TEXT NOT NULL,
    PRIMARY KEY (vorlagen_id, oberkategorie, unterkategorie)
);

CREATE INDEX IF NOT EXISTS idx_themen_oberkategorie ON abstimmung_themen(oberkategorie);

-- Import metadata
CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT
);
`
