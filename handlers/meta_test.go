// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/swissvotes-dashboard/db"
	"github.com/danielhkuo/swissvotes-dashboard/models"
	"github.com/danielhkuo/swissvotes-dashboard/testutil"
)

func TestLastUpdate_BeforeFirstImport(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	handler := NewMetaHandler(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	handler.LastUpdate(w, testutil.MakeRequest("GET", "/api/last-update", nil))

	testutil.AssertStatus(t, w, 404)
}

func TestLastUpdate_AfterImport(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	if err := db.SetLastUpdate(conn, at); err != nil {
		t.Fatalf("SetLastUpdate failed: %v", err)
	}

	handler := NewMetaHandler(conn, testutil.GetTestConfig())
	w := httptest.NewRecorder()
	handler.LastUpdate(w, testutil.MakeRequest("GET", "/api/last-update", nil))

	testutil.AssertStatus(t, w, 200)

	var resp models.LastUpdateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.LastModified != at.Format(time.RFC3339) {
		t.Errorf("expected %q, got %q", at.Format(time.RFC3339), resp.LastModified)
	}
}
