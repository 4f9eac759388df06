// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and the import marker.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and
indexes. The import pipeline runs it at the start of every invocation.

# Tables

The schema includes:

  - swissvotes: One row per popular vote (vorlagen_id is the key)
  - partei_empfehlungen: Party recommendations per vote
  - kanton_ergebnisse: Canton-level results per vote
  - abstimmung_themen: Policy topic assignments per vote
  - meta: Key/value import metadata (last_update marker)

# Relationships

	swissvotes 1──* partei_empfehlungen
	swissvotes 1──* kanton_ergebnisse
	swissvotes 1──* abstimmung_themen

Dependent tables use composite natural keys matching the entity
identities: (vorlagen_id, partei_code), (vorlagen_id, kanton_code) and
(vorlagen_id, oberkategorie, unterkategorie).

# Engine Portability

The same DDL and statements run on PostgreSQL (lib/pq) and SQLite
(modernc.org/sqlite). datum is stored as ISO-8601 text, which keeps
lexicographic ordering equal to chronological ordering in both engines.

# Update Marker

	db.SetLastUpdate(conn, time.Now())
	value, err := db.LastUpdate(conn)

LastUpdate returns sql.ErrNoRows when no import has completed yet;
/api/last-update translates that into a 404.
*/
package db
