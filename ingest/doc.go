// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ingest downloads the Swissvotes dataset and imports it.

# Pipeline

	remote CSV → rowReader → (per row, concurrently) Decompose → Writer → database

Run drives one full import:

	if err := ingest.Run(dbConn, cfg); err != nil {
		slog.Error("import failed", "error", err)
	}

Every invocation reprocesses the full dataset; duplicate keys are
deduplicated by the database's unique constraints, not by application
state. Run ensures the schema first, so it is safe against an empty
database.

# Row Model

The dataset is a ~700-column semicolon-delimited CSV with a UTF-8 BOM.
rowReader strips the BOM, trims header names, and exposes each record
as a Row (map of trimmed column name to raw cell). Columns are
addressed by naming convention:

	anr                      proposal id (integer, required)
	p-<party>                party recommendation code
	<canton>-japroz/-annahme canton yes-percentage and acceptance
	d<slot>e<level>          category codes, 3 slots x 3 levels

# Decomposition

Decompose is pure: one Row in, up to four record sets out. Rows whose
anr does not parse as an integer yield nothing. Party and canton
extraction iterate the closed code lists in models, never the row's
own columns. Topic slots resolve through prefix-refinement (see
classifyTopics).

# Persistence

Writer issues one INSERT per record with ON CONFLICT ... DO NOTHING on
the natural keys, vote row first because of the foreign keys. With
cfg.UpdateExisting the conflicts become DO UPDATE instead, so re-runs
pick up upstream corrections. Writes for one row are not transactional;
a statement failure aborts the rest of that row only.

# Concurrency

Rows are dispatched to a bounded worker pool (cfg.ImportWorkers)
sharing the caller's connection pool. No ordering holds across rows;
within a row the vote insert strictly precedes its dependents.
Correctness under concurrent duplicate keys relies on the database's
uniqueness enforcement alone.

# Entry Points

Run takes a caller-owned *sql.DB and leaves the update marker to the
caller. RunStandalone serves the scheduled-refresh trigger: it opens
and closes its own connection and writes the marker itself.
*/
package ingest
