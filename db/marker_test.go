// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupMarkerDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return conn
}

func TestLastUpdate_MissingMarker(t *testing.T) {
	conn := setupMarkerDB(t)
	defer conn.Close()

	if _, err := LastUpdate(conn); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows before any import, got %v", err)
	}
}

func TestSetLastUpdate_RoundTrip(t *testing.T) {
	conn := setupMarkerDB(t)
	defer conn.Close()

	at := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	if err := SetLastUpdate(conn, at); err != nil {
		t.Fatalf("SetLastUpdate failed: %v", err)
	}

	got, err := LastUpdate(conn)
	if err != nil {
		t.Fatalf("LastUpdate failed: %v", err)
	}
	if got != at.Format(time.RFC3339) {
		t.Errorf("expected %q, got %q", at.Format(time.RFC3339), got)
	}
}

func TestSetLastUpdate_Overwrites(t *testing.T) {
	conn := setupMarkerDB(t)
	defer conn.Close()

	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	second := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	if err := SetLastUpdate(conn, first); err != nil {
		t.Fatalf("first SetLastUpdate failed: %v", err)
	}
	if err := SetLastUpdate(conn, second); err != nil {
		t.Fatalf("second SetLastUpdate failed: %v", err)
	}

	got, err := LastUpdate(conn)
	if err != nil {
		t.Fatalf("LastUpdate failed: %v", err)
	}
	if got != second.Format(time.RFC3339) {
		t.Errorf("expected latest timestamp, got %q", got)
	}

	var count int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM meta`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected single marker row, got %d", count)
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := setupMarkerDB(t)
	defer conn.Close()

	if err := CreateSchema(conn); err != nil {
		t.Errorf("second CreateSchema failed: %v", err)
	}
}
