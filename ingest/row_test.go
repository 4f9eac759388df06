// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"io"
	"strings"
	"testing"
)

func TestRowReader_HeaderNormalization(t *testing.T) {
	// BOM on the first header, stray spaces on another
	input := "\ufeffanr; datum ;titel_kurz_d\n666;05.03.2023;Testvorlage\n"

	reader, err := newRowReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("newRowReader failed: %v", err)
	}

	row, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	if got := row.Get("anr"); got != "666" {
		t.Errorf("expected BOM-stripped anr column, got %q", got)
	}
	if got := row.Get("datum"); got != "05.03.2023" {
		t.Errorf("expected trimmed datum column, got %q", got)
	}
	if got := row.Get("titel_kurz_d"); got != "Testvorlage" {
		t.Errorf("expected titel_kurz_d, got %q", got)
	}
}

func TestRowReader_ShortRecordsPadded(t *testing.T) {
	input := "anr;datum;stichwort\n1;05.03.2023\n"

	reader, err := newRowReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("newRowReader failed: %v", err)
	}

	row, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	if got := row.Get("stichwort"); got != "" {
		t.Errorf("expected empty cell for missing column, got %q", got)
	}
}

func TestRowReader_SemicolonDelimited(t *testing.T) {
	// Commas are data, not delimiters
	input := "anr;titel_kurz_d\n2;Kultur, Religion, Medien\n"

	reader, err := newRowReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("newRowReader failed: %v", err)
	}

	row, err := reader.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	if got := row.Get("titel_kurz_d"); got != "Kultur, Religion, Medien" {
		t.Errorf("expected comma kept inside cell, got %q", got)
	}
}

func TestRowReader_EOF(t *testing.T) {
	reader, err := newRowReader(strings.NewReader("anr;datum\n"))
	if err != nil {
		t.Fatalf("newRowReader failed: %v", err)
	}

	if _, err := reader.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last row, got %v", err)
	}
}

func TestRowReader_EmptyStream(t *testing.T) {
	if _, err := newRowReader(strings.NewReader("")); err == nil {
		t.Error("expected error for empty stream")
	}
}

func TestRowGet_MissingColumn(t *testing.T) {
	row := Row{"anr": "1"}
	if got := row.Get("does-not-exist"); got != "" {
		t.Errorf("expected empty string for unknown column, got %q", got)
	}
}
