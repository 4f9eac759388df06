// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ingest

import (
	"strconv"
	"strings"

	"github.com/danielhkuo/swissvotes-dashboard/mapping"
	"github.com/danielhkuo/swissvotes-dashboard/models"
)

// Decompose turns one dataset row into its persistable record sets.
//
// The anr column must parse as an integer; otherwise the whole row is
// rejected (ok=false), which filters header artifacts, blank lines and
// corrupt rows without partial inserts. When the id check passes a
// Vote is always produced, with the two percentage fields defaulting
// to 0 when unparseable.
func Decompose(row Row) (models.Decomposition, bool) {
	id := mapping.ToInt(row.Get("anr"))
	if id == nil {
		return models.Decomposition{}, false
	}
	vorlagenID := *id

	dec := models.Decomposition{
		Vote: &models.Vote{
			VorlagenID:       vorlagenID,
			Datum:            mapping.FormatDate(row.Get("datum")),
			TitelKurzD:       row.Get("titel_kurz_d"),
			TitelKurzF:       row.Get("titel_kurz_f"),
			TitelKurzE:       row.Get("titel_kurz_e"),
			TitelOffD:        row.Get("titel_off_d"),
			TitelOffF:        row.Get("titel_off_f"),
			Stichwort:        row.Get("stichwort"),
			Swissvoteslink:   row.Get("swissvoteslink"),
			BundesratPos:     mapping.ToInt(row.Get("br-pos")),
			ParlamentPos:     mapping.ToInt(row.Get("bv-pos")),
			Annahme:          mapping.ToBool(row.Get("annahme")),
			JaStimmenProzent: floatOrZero(row.Get("volkja-proz")),
			Stimmbeteiligung: floatOrZero(row.Get("bet")),
		},
	}

	// One column per known party; unmapped codes produce no record.
	for _, partei := range models.Parties {
		empfehlung := mapping.Recommendation(row.Get("p-" + partei))
		if empfehlung == "" {
			continue
		}
		dec.Parties = append(dec.Parties, models.PartyRecommendation{
			VorlagenID: vorlagenID,
			ParteiCode: partei,
			Empfehlung: empfehlung,
		})
	}

	// Both canton columns must be valid or the pair is skipped entirely.
	for _, kanton := range models.Cantons {
		jaProzent, err := strconv.ParseFloat(strings.TrimSpace(row.Get(kanton+"-japroz")), 64)
		angenommen := mapping.ToBool(row.Get(kanton + "-annahme"))
		if err != nil || angenommen == nil {
			continue
		}
		dec.Cantons = append(dec.Cantons, models.CantonResult{
			VorlagenID: vorlagenID,
			KantonCode: strings.ToUpper(kanton),
			JaProzent:  jaProzent,
			Annahme:    *angenommen,
		})
	}

	dec.Topics = classifyTopics(row, vorlagenID)

	return dec, true
}

// floatOrZero implements the documented simplification for the two
// percentage fields: absent or unparseable values become 0, not null.
func floatOrZero(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
