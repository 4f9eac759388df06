// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "postgres" or "sqlite" (default: postgres)
  - DatasetURL: Swissvotes dataset CSV URL (default: published URL)
  - ImportWorkers: Concurrent row importers (default: 8)
  - RefreshIntervalHours: Hours between scheduled re-imports, 0
    disables the scheduler (default: 24)
  - UpdateExisting: Upsert instead of insert-or-ignore (default: false)

# CLI Flags

	-p                Server port
	-d                Database URL
	-t                Database type
	-dataset-url      Dataset CSV URL
	-import-workers   Concurrent row importers
	-refresh-interval Hours between scheduled re-imports
	-update-existing  Update already-imported rows

# Environment Variables

Flags fall back to environment variables:

	PORT                   → -p
	DATABASE_URL           → -d
	DATABASE_TYPE          → -t
	DATASET_URL            → -dataset-url
	IMPORT_WORKERS         → -import-workers
	REFRESH_INTERVAL_HOURS → -refresh-interval
	UPDATE_EXISTING        → -update-existing

CLI flags take precedence over environment variables. main loads a
.env file via godotenv before parsing, so a local .env feeds the same
fallbacks.

# Update Semantics

UpdateExisting exists because insert-or-ignore never reflects upstream
corrections to an already-imported vote. The default keeps the
historical insert-or-ignore behavior; enabling the flag makes re-runs
converge on the current upstream values.
*/
package cliparse
