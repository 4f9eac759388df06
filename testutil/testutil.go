// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/swissvotes-dashboard/cliparse"
	"github.com/danielhkuo/swissvotes-dashboard/db"
	"github.com/danielhkuo/swissvotes-dashboard/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. The pool is pinned to one connection so every statement sees
// the same in-memory database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", "file::memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "file::memory:",
		DatabaseType:  "sqlite",
		DatasetURL:    cliparse.DefaultDatasetURL,
		ImportWorkers: 4,
	}
}

// InsertTestVote inserts a vote row directly
func InsertTestVote(t *testing.T, conn *sql.DB, v models.Vote) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO swissvotes (vorlagen_id, datum, titel_kurz_d, titel_kurz_f, titel_kurz_e,
		                        titel_off_d, titel_off_f, stichwort, swissvoteslink,
		                        bundesrat_pos, parlament_pos, annahme,
		                        ja_stimmen_prozent, stimmbeteiligung)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, v.VorlagenID, v.Datum, v.TitelKurzD, v.TitelKurzF, v.TitelKurzE,
		v.TitelOffD, v.TitelOffF, v.Stichwort, v.Swissvoteslink,
		v.BundesratPos, v.ParlamentPos, v.Annahme,
		v.JaStimmenProzent, v.Stimmbeteiligung)
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
	}
}

// InsertTestRecommendation inserts a party recommendation row directly
func InsertTestRecommendation(t *testing.T, conn *sql.DB, vorlagenID int, partei, empfehlung string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO partei_empfehlungen (vorlagen_id, partei_code, empfehlung)
		VALUES ($1, $2, $3)
	`, vorlagenID, partei, empfehlung)
	if err != nil {
		t.Fatalf("Failed to insert test recommendation: %v", err)
	}
}

// InsertTestCantonResult inserts a canton result row directly
func InsertTestCantonResult(t *testing.T, conn *sql.DB, vorlagenID int, kanton string, jaProzent float64, annahme bool) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO kanton_ergebnisse (vorlagen_id, kanton_code, ja_prozent, annahme)
		VALUES ($1, $2, $3, $4)
	`, vorlagenID, kanton, jaProzent, annahme)
	if err != nil {
		t.Fatalf("Failed to insert test canton result: %v", err)
	}
}

// InsertTestTopic inserts a topic assignment row directly
func InsertTestTopic(t *testing.T, conn *sql.DB, vorlagenID int, oberkategorie, unterkategorie string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO abstimmung_themen (vorlagen_id, oberkategorie, unterkategorie)
		VALUES ($1, $2, $3)
	`, vorlagenID, oberkategorie, unterkategorie)
	if err != nil {
		t.Fatalf("Failed to insert test topic: %v", err)
	}
}

// IntPtr and BoolPtr build the nullable fields of models.Vote.
func IntPtr(n int) *int    { return &n }
func BoolPtr(b bool) *bool { return &b }

// ServeCSV starts a test HTTP server returning the given body as the
// dataset download. The caller owns the returned server.
func ServeCSV(t *testing.T, body string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		w.Write([]byte(body))
	}))
}

// CountRows returns the number of rows in a table
func CountRows(t *testing.T, conn *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("Failed to count rows in %s: %v", table, err)
	}
	return count
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
