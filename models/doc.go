// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types for the API.

# Domain Types

One dataset row decomposes into up to four record sets:

  - Vote: One popular vote (vorlagen_id is the stable key)
  - PartyRecommendation: One party's stance on a vote
  - CantonResult: One canton's result for a vote
  - TopicAssignment: One policy-area classification of a vote
  - Decomposition: The four sets produced from one row

Nullable dataset fields use pointer types: a nil Annahme means the
outcome is unknown (pending vote), which is distinct from false
(rejected). Position columns are *int for the same reason.

# Response Types

Types for JSON responses, one per endpoint:

  - VoteSummary: /api/swissvotes entries
  - RecommendationVsPeople: /api/diagram/empfehlungen-vs-volk
  - PartyRepresentation: /api/diagram/partei-repraesentation
  - HeatmapEntry: /api/diagram/heatmap-volk
  - CantonAgreement: /api/diagram/kanton-repraesentation
  - TrendEntry: /api/diagram/trends-repraesentation
  - TopicAnalysis: /api/diagram/themenanalyse
  - LastUpdateResponse: /api/last-update
  - ErrorResponse: error, message

# Constants

Position codes (bundesrat_pos / parlament_pos):

	PosYes              = 1
	PosNo               = 2
	PosNoRecommendation = 3
	PosFree             = 5

PositionLabel decodes them ("Ja", "Nein", "Keine Parole", "Freigabe",
otherwise "Unklar").

# Code Lists

Parties and Cantons are the closed sets of codes the importer reads
from the dataset. Extraction is list-driven, never row-driven: a new
column upstream is ignored until the list grows.
*/
package models
