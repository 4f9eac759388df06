// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/db"
	"github.com/danielhkuo/swissvotes-dashboard/ingest"
	"github.com/danielhkuo/swissvotes-dashboard/middleware"
	"github.com/danielhkuo/swissvotes-dashboard/router"
)

func main() {
	var err error

	// Optional .env file feeds the env fallbacks of cliparse
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded .env file")
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	dbConn, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Initial import runs in the background so the API serves whatever
	// is already persisted while the dataset downloads.
	go func() {
		if err := ingest.Run(dbConn, cfg); err != nil {
			slog.Error("initial import failed", "error", err)
			return
		}
		if err := db.SetLastUpdate(dbConn, time.Now()); err != nil {
			slog.Error("failed to record update marker", "error", err)
		}
	}()

	// Scheduled re-imports through the standalone trigger path
	if cfg.RefreshIntervalHours > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(cfg.RefreshIntervalHours) * time.Hour)
			defer ticker.Stop()
			for range ticker.C {
				if err := ingest.RunStandalone(cfg); err != nil {
					slog.Error("scheduled refresh failed", "error", err)
				}
			}
		}()
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
