// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"fmt"
	"strings"

	"github.com/danielhkuo/swissvotes-dashboard/mapping"
	"github.com/danielhkuo/swissvotes-dashboard/models"
)

// The dataset uses "." as a not-applicable marker in category cells.
const noCategory = "."

// classifyTopics resolves the three independent category slots of a
// row into topic assignments.
//
// Each slot d<i> carries up to three refinement levels d<i>e1..d<i>e3.
// Level 1 is required; a deeper level is accepted only when it
// textually extends the previous one with a "." separator (so "4.2"
// refines "4", but "12.1" does not). The most specific accepted code
// becomes the Unterkategorie, and its top-level segment resolves to the
// coarse Oberkategorie label. Slots with no level-1 code, the "."
// sentinel, or an unmapped top-level segment produce nothing.
func classifyTopics(row Row, vorlagenID int) []models.TopicAssignment {
	var assignments []models.TopicAssignment

	for slot := 1; slot <= 3; slot++ {
		e1 := strings.TrimSpace(row.Get(fmt.Sprintf("d%de1", slot)))
		e2 := strings.TrimSpace(row.Get(fmt.Sprintf("d%de2", slot)))
		e3 := strings.TrimSpace(row.Get(fmt.Sprintf("d%de3", slot)))

		if e1 == "" || e1 == noCategory {
			continue
		}

		code := e1
		if e2 != "" && e2 != noCategory && strings.HasPrefix(e2, e1+".") {
			code = e2
			if e3 != "" && e3 != noCategory && strings.HasPrefix(e3, e2+".") {
				code = e3
			}
		}

		label := mapping.Topic(topLevel(code))
		if label == "" {
			continue
		}

		assignments = append(assignments, models.TopicAssignment{
			VorlagenID:     vorlagenID,
			Oberkategorie:  label,
			Unterkategorie: code,
		})
	}

	return assignments
}

// topLevel returns the segment before the first "." of a category code.
func topLevel(code string) string {
	if i := strings.Index(code, "."); i >= 0 {
		return code[:i]
	}
	return code
}
