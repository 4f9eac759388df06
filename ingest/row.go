// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one parsed dataset record, keyed by trimmed header name.
// The dataset is a wide format with hundreds of columns; rows are
// accessed dynamically by the documented naming conventions
// (anr, p-<party>, <canton>-japroz, d<slot>e<level>, ...).
type Row map[string]string

// Get returns the raw cell for a column, or "" when the column does
// not exist or the record was shorter than the header.
func (r Row) Get(name string) string {
	return r[name]
}

// rowReader streams semicolon-delimited records from the dataset.
type rowReader struct {
	cr     *csv.Reader
	header []string
}

// newRowReader consumes the header row. Header names are trimmed and a
// leading UTF-8 byte-order mark is stripped from the first one.
func newRowReader(r io.Reader) (*rowReader, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1 // records may be shorter than the header
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		header[i] = strings.TrimSpace(name)
	}

	return &rowReader{cr: cr, header: header}, nil
}

// Next returns the next data row, io.EOF at end of stream, or the
// parser's error for a malformed stream.
func (rr *rowReader) Next() (Row, error) {
	record, err := rr.cr.Read()
	if err != nil {
		return nil, err
	}

	row := make(Row, len(rr.header))
	for i, name := range rr.header {
		if i < len(record) {
			row[name] = record[i]
		} else {
			row[name] = ""
		}
	}

	return row, nil
}
