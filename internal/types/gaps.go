package types

// Gap analysis statuses. A keyword is explicit when it appears verbatim in
// the resume or corpus, otherwise it is missing.
const (
	StatusExplicit = "explicit"
	StatusMissing  = "missing"
)

// GapAnalysis records where (or whether) an extracted keyword appears in the
// candidate's materials
type GapAnalysis struct {
	Keyword        string   `json:"keyword"`
	Category       string   `json:"category"`
	Importance     string   `json:"importance"`
	Status         string   `json:"status"`
	MatchLocations []string `json:"match_locations"`
}
