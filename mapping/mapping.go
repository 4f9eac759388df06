// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mapping

import (
	"strconv"
	"strings"
)

// ToBool maps a dataset truth token to a tri-state boolean.
// "1" is true, "0" is false, everything else (including empty cells)
// is nil. Callers must treat nil as "unknown", not as false - a vote
// with an unknown outcome is still imported.
func ToBool(raw string) *bool {
	switch strings.TrimSpace(raw) {
	case "1":
		v := true
		return &v
	case "0":
		v := false
		return &v
	}
	return nil
}

// ToInt parses an integer cell. Returns nil when the cell is empty or
// not a valid integer.
func ToInt(raw string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

// FormatDate converts the dataset's DD.MM.YYYY form to ISO YYYY-MM-DD.
// The parts are reassembled textually without calendar validation:
// malformed input produces malformed output rather than an error.
func FormatDate(raw string) string {
	parts := strings.SplitN(raw, ".", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

var recommendations = map[string]string{
	"1": "Ja",
	"2": "Nein",
	"3": "Keine Parole",
	"4": "Stimmfreigabe",
	"5": "Enthaltung",
}

// Recommendation maps a party recommendation code to its canonical
// label. Unknown or empty codes return "" and the caller must skip the
// record instead of storing a placeholder.
func Recommendation(raw string) string {
	return recommendations[strings.TrimSpace(raw)]
}

// Policy area labels keyed by the top-level segment of the d<i>e<j>
// category codes.
var topics = map[string]string{
	"1":  "Staatsordnung",
	"2":  "Aussenpolitik",
	"3":  "Sicherheitspolitik",
	"4":  "Wirtschaft",
	"5":  "Landwirtschaft",
	"6":  "Öffentliche Finanzen",
	"7":  "Energie",
	"8":  "Verkehr und Infrastruktur",
	"9":  "Umwelt und Lebensraum",
	"10": "Sozialpolitik",
	"11": "Bildung und Forschung",
	"12": "Kultur, Religion, Medien",
}

// Topic maps a top-level category code to its coarse policy-area
// label. Unknown codes return "".
func Topic(code string) string {
	return topics[strings.TrimSpace(code)]
}
