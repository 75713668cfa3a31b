package models

import (
	"database/sql/driver"
	"encoding/json"
)

// BriefAnalysis is the full structured output of analyzing a legal brief
type BriefAnalysis struct {
	Summary     string         `json:"summary"`
	Entities    []Entity       `json:"entities"`
	EntityMap   EntityMap      `json:"entity_map"`
	Parties     PartySet       `json:"parties"`
	Acts        []string       `json:"acts"`
	ActSections []ActSection   `json:"act_sections"`
	Citations   []CaseCitation `json:"citations"`
	Keywords    []string       `json:"keywords"`
	Domains     []LegalDomain  `json:"domains"`
	Queries     []string       `json:"queries"`
}

// DomainNames returns the domain names in ranked order
func (a BriefAnalysis) DomainNames() []string {
	names := make([]string, 0, len(a.Domains))
	for _, d := range a.Domains {
		names = append(names, d.Name)
	}
	return names
}

// ResearchResults holds the deduplicated, ranked output of the research
// aggregator across all connectors.
type ResearchResults struct {
	LawSections []LawSection  `json:"law_sections"`
	CaseHistory []CaseHistory `json:"case_history"`
}

// AnalysisResult is the synthesized legal analysis used to draft documents.
// Arguments, Challenges and Recommendations are always padded to their
// minimum lengths so templates never render empty lists.
type AnalysisResult struct {
	Summary         string   `json:"summary"`
	Arguments       []string `json:"arguments"`
	Precedents      []string `json:"precedents"`
	Statutes        []string `json:"statutes"`
	Challenges      []string `json:"challenges"`
	Recommendations []string `json:"recommendations"`
}

// AnalysisSnapshot is the persisted form of a brief's analysis, stored as
// JSONB alongside the brief record.
type AnalysisSnapshot struct {
	Analysis BriefAnalysis    `json:"analysis"`
	Research *ResearchResults `json:"research,omitempty"`
	Result   *AnalysisResult  `json:"result,omitempty"`
}

// Value implements driver.Valuer for JSONB
func (s AnalysisSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *AnalysisSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = AnalysisSnapshot{}
		return nil
	}

	// Handle different types that pgx might return for JSONB
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*s = AnalysisSnapshot{}
		return nil
	}

	if len(bytes) == 0 {
		*s = AnalysisSnapshot{}
		return nil
	}

	return json.Unmarshal(bytes, s)
}
