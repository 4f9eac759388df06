// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "testing"

func TestPositionLabel(t *testing.T) {
	testCases := []struct {
		name string
		pos  *int
		want string
	}{
		{"Yes", intPtr(1), "Ja"},
		{"No", intPtr(2), "Nein"},
		{"NoRecommendation", intPtr(3), "Keine Parole"},
		{"Free", intPtr(5), "Freigabe"},
		{"OutOfSet", intPtr(4), "Unklar"},
		{"Negative", intPtr(-1), "Unklar"},
		{"Missing", nil, "Unklar"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PositionLabel(tc.pos); got != tc.want {
				t.Errorf("PositionLabel(%v) = %q, want %q", tc.pos, got, tc.want)
			}
		})
	}
}

func TestCodeLists(t *testing.T) {
	if len(Cantons) != 26 {
		t.Errorf("expected 26 cantons, got %d", len(Cantons))
	}
	if len(Parties) != 21 {
		t.Errorf("expected 21 parties, got %d", len(Parties))
	}

	// Code lists drive column lookups, so they must stay lowercase
	for _, k := range Cantons {
		for _, r := range k {
			if r < 'a' || r > 'z' {
				t.Errorf("canton code %q is not lowercase ascii", k)
			}
		}
	}
}

func intPtr(n int) *int { return &n }
