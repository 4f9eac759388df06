// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Position codes used by the dataset for the Bundesrat and Parlament columns
const (
	PosYes              = 1
	PosNo               = 2
	PosNoRecommendation = 3
	PosFree             = 5
)

// Canonical recommendation labels. The query layer compares against these
// literals, so they must match what the importer writes.
const (
	RecYes     = "Ja"
	RecNo      = "Nein"
	RecNone    = "Keine Parole"
	RecFree    = "Stimmfreigabe"
	RecAbstain = "Enthaltung"
)

// Parties is the closed set of party codes imported from the dataset.
// Column names follow the p-<code> convention.
var Parties = []string{
	"fdp", "sps", "svp", "mitte", "evp", "gps", "glp",
	"pda", "sd", "edu", "fps", "lega", "kvp", "mcg",
	"ucsp", "cvp", "bdp", "lps", "ldu", "poch", "rep",
}

// Cantons is the closed set of canton codes imported from the dataset.
// Column names follow the <code>-japroz / <code>-annahme convention.
var Cantons = []string{
	"zh", "be", "lu", "ur", "sz", "ow", "nw", "gl", "zg", "fr",
	"so", "bs", "bl", "sh", "ar", "ai", "sg", "gr", "ag", "tg",
	"ti", "vd", "vs", "ne", "ge", "ju",
}

// PositionLabel decodes a Bundesrat/Parlament position code into the
// label served by the diagram endpoints. Unknown or missing codes
// (including a failed integer parse upstream) decode to "Unklar".
func PositionLabel(pos *int) string {
	if pos == nil {
		return "Unklar"
	}
	switch *pos {
	case PosYes:
		return RecYes
	case PosNo:
		return RecNo
	case PosNoRecommendation:
		return RecNone
	case PosFree:
		return "Freigabe"
	}
	return "Unklar"
}

// Domain types

type Vote struct {
	VorlagenID       int     `json:"vorlagen_id"`
	Datum            string  `json:"datum"`
	TitelKurzD       string  `json:"titel_kurz_d"`
	TitelKurzF       string  `json:"titel_kurz_f"`
	TitelKurzE       string  `json:"titel_kurz_e"`
	TitelOffD        string  `json:"titel_off_d"`
	TitelOffF        string  `json:"titel_off_f"`
	Stichwort        string  `json:"stichwort"`
	Swissvoteslink   string  `json:"swissvoteslink"`
	BundesratPos     *int    `json:"bundesrat_pos"`
	ParlamentPos     *int    `json:"parlament_pos"`
	Annahme          *bool   `json:"annahme"`
	JaStimmenProzent float64 `json:"ja_stimmen_prozent"`
	Stimmbeteiligung float64 `json:"stimmbeteiligung"`
}

type PartyRecommendation struct {
	VorlagenID int    `json:"vorlagen_id"`
	ParteiCode string `json:"partei_code"`
	Empfehlung string `json:"empfehlung"`
}

type CantonResult struct {
	VorlagenID int     `json:"vorlagen_id"`
	KantonCode string  `json:"kanton_code"`
	JaProzent  float64 `json:"ja_prozent"`
	Annahme    bool    `json:"annahme"`
}

type TopicAssignment struct {
	VorlagenID     int    `json:"vorlagen_id"`
	Oberkategorie  string `json:"oberkategorie"`
	Unterkategorie string `json:"unterkategorie"`
}

// Decomposition is the persistable breakdown of one dataset row.
// Vote is always non-nil when the row passed the id check; the three
// record lists may each be empty.
type Decomposition struct {
	Vote    *Vote
	Parties []PartyRecommendation
	Cantons []CantonResult
	Topics  []TopicAssignment
}

// Response types

// PartyStance is one aggregated party recommendation inside a response.
type PartyStance struct {
	Partei     string `json:"partei"`
	Empfehlung string `json:"empfehlung"`
}

// VoteSummary is one entry of GET /api/swissvotes.
type VoteSummary struct {
	VorlagenID       int           `json:"vorlagen_id"`
	Datum            string        `json:"datum"`
	TitelKurzD       string        `json:"titel_kurz_d"`
	Stichwort        string        `json:"stichwort"`
	Annahme          *bool         `json:"annahme"`
	JaStimmenProzent float64       `json:"ja_stimmen_prozent"`
	Stimmbeteiligung float64       `json:"stimmbeteiligung"`
	Empfehlungen     []PartyStance `json:"empfehlungen"`
}

// RecommendationVsPeople is one entry of GET /api/diagram/empfehlungen-vs-volk.
type RecommendationVsPeople struct {
	Datum               string  `json:"datum"`
	TitelKurzD          string  `json:"titel_kurz_d"`
	TitelKurzF          string  `json:"titel_kurz_f"`
	TitelKurzE          string  `json:"titel_kurz_e"`
	VorlagenID          int     `json:"vorlagen_id"`
	BundesratEmpfehlung string  `json:"bundesrat_empfehlung"`
	ParlamentEmpfehlung string  `json:"parlament_empfehlung"`
	JaStimmenProzent    float64 `json:"ja_stimmen_prozent"`
	Annahme             *bool   `json:"annahme"`
}

// PartyRepresentation is one entry of GET /api/diagram/partei-repraesentation.
type PartyRepresentation struct {
	ParteiCode string `json:"partei_code"`
	TitelKurzD string `json:"titel_kurz_d"`
	TitelKurzF string `json:"titel_kurz_f"`
	TitelKurzE string `json:"titel_kurz_e"`
	VorlagenID int    `json:"vorlagen_id"`
	Datum      string `json:"datum"`
	Annahme    *bool  `json:"annahme"`
	Empfehlung string `json:"empfehlung"`
}

// HeatmapEntry is one entry of GET /api/diagram/heatmap-volk.
type HeatmapEntry struct {
	Akteur     string `json:"akteur"`
	Empfehlung string `json:"empfehlung"`
	Annahme    *bool  `json:"annahme"`
	Datum      string `json:"datum"`
}

// CantonAgreement is one entry of GET /api/diagram/kanton-repraesentation.
type CantonAgreement struct {
	TitelKurzD         string `json:"titel_kurz_d"`
	TitelKurzF         string `json:"titel_kurz_f"`
	TitelKurzE         string `json:"titel_kurz_e"`
	VorlagenID         int    `json:"vorlagen_id"`
	Datum              string `json:"datum"`
	KantonCode         string `json:"kanton_code"`
	Uebereinstimmungen int    `json:"uebereinstimmungen"`
	Total              int    `json:"total"`
}

// TrendEntry is one entry of GET /api/diagram/trends-repraesentation.
type TrendEntry struct {
	Jahr               string `json:"jahr"`
	Akteur             string `json:"akteur"`
	Uebereinstimmungen int    `json:"uebereinstimmungen"`
	Total              int    `json:"total"`
}

// TopicAnalysis is one entry of GET /api/diagram/themenanalyse.
type TopicAnalysis struct {
	VorlagenID         int           `json:"vorlagen_id"`
	Thema              string        `json:"thema"`
	Annahme            *bool         `json:"annahme"`
	BundesratPos       string        `json:"bundesrat_pos"`
	ParlamentPos       string        `json:"parlament_pos"`
	ParteiEmpfehlungen []PartyStance `json:"partei_empfehlungen"`
}

// LastUpdateResponse is the body of GET /api/last-update.
type LastUpdateResponse struct {
	LastModified string `json:"lastModified"`
}

// RefreshResponse is the body of POST /api/refresh.
type RefreshResponse struct {
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
