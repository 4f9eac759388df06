// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/db"
)

// Run executes one full import against the given connection pool:
// ensure schema, stream the dataset CSV, and persist every row through
// a bounded pool of import workers.
//
// Row-level failures (unparseable rows, statement errors) are logged
// and counted but never abort the run. A schema error or a failure of
// the download stream itself aborts the run; already-persisted rows
// stay in place. Run does not write the update marker - that is the
// caller's responsibility after a successful return.
func Run(dbConn *sql.DB, cfg cliparse.Config) error {
	log := slog.With("run_id", uuid.NewString())
	start := time.Now()

	if err := db.CreateSchema(dbConn); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}

	log.Info("downloading dataset", "url", cfg.DatasetURL)
	resp, err := http.Get(cfg.DatasetURL)
	if err != nil {
		return fmt.Errorf("download dataset: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download dataset: unexpected status %s", resp.Status)
	}

	reader, err := newRowReader(resp.Body)
	if err != nil {
		return err
	}

	writer := NewWriter(dbConn, cfg.UpdateExisting)

	// Bounded worker pool: rows are dispatched as soon as they are
	// parsed, but at most ImportWorkers rows are persisted at once.
	// Every dispatched row is tracked; the run completes only after
	// all workers drain.
	rows := make(chan Row)
	var imported, skipped, failed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < cfg.ImportWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for row := range rows {
				dec, ok := Decompose(row)
				if !ok {
					skipped.Add(1)
					continue
				}
				if err := writer.Write(dec); err != nil {
					failed.Add(1)
					log.Error("row import failed", "vorlagen_id", dec.Vote.VorlagenID, "error", err)
					continue
				}
				imported.Add(1)
			}
		}()
	}

	var streamErr error
	for {
		row, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			streamErr = fmt.Errorf("read dataset stream: %w", err)
			break
		}
		rows <- row
	}
	close(rows)

	if streamErr != nil {
		// Failed run: in-flight rows are abandoned, not awaited.
		return streamErr
	}

	wg.Wait()

	log.Info("import complete",
		"imported", humanize.Comma(imported.Load()),
		"skipped", humanize.Comma(skipped.Load()),
		"failed", humanize.Comma(failed.Load()),
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)
	return nil
}

// RunStandalone is the scheduled-refresh entry point. Unlike Run it
// owns its database connection (opened from the config, closed on all
// exit paths) and records the update marker on success.
func RunStandalone(cfg cliparse.Config) error {
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer dbConn.Close()

	if err := dbConn.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := Run(dbConn, cfg); err != nil {
		return err
	}

	return db.SetLastUpdate(dbConn, time.Now())
}
