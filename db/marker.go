// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// LastUpdateKey is the meta table key holding the timestamp of the last
// successful full import.
const LastUpdateKey = "last_update"

// SetLastUpdate records a successful import, overwriting any previous
// marker atomically.
func SetLastUpdate(db *sql.DB, at time.Time) error {
	_, err := db.Exec(`
		INSERT INTO meta (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, LastUpdateKey, at.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to set update marker: %w", err)
	}

	return nil
}

// LastUpdate returns the recorded marker value. Returns sql.ErrNoRows
// when no import has completed yet.
func LastUpdate(db *sql.DB) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM meta WHERE key = $1`, LastUpdateKey).Scan(&value)
	if err != nil {
		return "", err
	}

	return value, nil
}
