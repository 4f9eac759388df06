// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

// DefaultDatasetURL is the published Swissvotes dataset.
const DefaultDatasetURL = "https://swissvotes.ch/page/dataset/swissvotes_dataset.csv"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	DatasetURL   string

	// ImportWorkers caps concurrent per-row persistence during an import.
	ImportWorkers int

	// RefreshIntervalHours drives the scheduled re-import; 0 disables it.
	RefreshIntervalHours int

	// UpdateExisting switches the importer from insert-or-ignore to
	// upsert, so upstream corrections to already-imported rows are
	// reflected on the next run.
	UpdateExisting bool
}

// DriverName returns the database/sql driver for the configured type.
func (c Config) DriverName() string {
	if c.DatabaseType == "sqlite" {
		return "sqlite"
	}
	return "postgres"
}

// ParseFlags validates flags and applies environment fallbacks
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("swissvotes-dashboard", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")

	// Import config
	fs.StringVar(&cfg.DatasetURL, "dataset-url", "", "Swissvotes dataset CSV URL")
	fs.IntVar(&cfg.ImportWorkers, "import-workers", 0, "Concurrent row importers")
	fs.IntVar(&cfg.RefreshIntervalHours, "refresh-interval", -1, "Hours between scheduled re-imports (0 disables)")
	fs.BoolVar(&cfg.UpdateExisting, "update-existing", false, "Update already-imported rows instead of ignoring them")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "postgres"
		}
	}
	if cfg.DatabaseType != "postgres" && cfg.DatabaseType != "sqlite" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatasetURL == "" {
		cfg.DatasetURL = os.Getenv("DATASET_URL")
		if cfg.DatasetURL == "" {
			cfg.DatasetURL = DefaultDatasetURL
		}
	}

	if cfg.ImportWorkers == 0 {
		if workersStr := os.Getenv("IMPORT_WORKERS"); workersStr != "" {
			workers, err := strconv.Atoi(workersStr)
			if err != nil {
				return Config{}, errors.New("invalid IMPORT_WORKERS env variable")
			}
			cfg.ImportWorkers = workers
		} else {
			cfg.ImportWorkers = 8 // default
		}
	}
	if cfg.ImportWorkers < 1 {
		return Config{}, errors.New("import workers must be at least 1")
	}

	if cfg.RefreshIntervalHours < 0 {
		if hoursStr := os.Getenv("REFRESH_INTERVAL_HOURS"); hoursStr != "" {
			hours, err := strconv.Atoi(hoursStr)
			if err != nil || hours < 0 {
				return Config{}, errors.New("invalid REFRESH_INTERVAL_HOURS env variable")
			}
			cfg.RefreshIntervalHours = hours
		} else {
			cfg.RefreshIntervalHours = 24 // default
		}
	}

	if !cfg.UpdateExisting {
		if updateStr := os.Getenv("UPDATE_EXISTING"); updateStr != "" {
			update, err := strconv.ParseBool(updateStr)
			if err != nil {
				return Config{}, errors.New("invalid UPDATE_EXISTING env variable")
			}
			cfg.UpdateExisting = update
		}
	}

	return cfg, nil
}
