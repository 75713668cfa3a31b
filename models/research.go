package models

import "fmt"

// Relevance tiers for research results. Exact statutory or citation matches
// must always outrank concept matches after sorting.
const (
	RelevanceExactMatch   = 9
	RelevanceConceptMatch = 7
	RelevanceMax          = 10
)

// LawSection is a statutory provision returned by a legal database
type LawSection struct {
	Act           string `json:"act"`
	SectionNumber string `json:"section_number"`
	Content       string `json:"content"`
	Relevance     int    `json:"relevance"`
	Source        string `json:"source,omitempty"`
	SourceDocID   string `json:"source_doc_id,omitempty"`
}

// Key is the deduplication key for law sections
func (s LawSection) Key() string {
	return s.Act + "|" + s.SectionNumber
}

// Label renders the section as "Act Section N" for summaries and metadata
func (s LawSection) Label() string {
	return fmt.Sprintf("%s Section %s", s.Act, s.SectionNumber)
}

// CaseHistory is a decided case returned by a legal database
type CaseHistory struct {
	Citation  string `json:"citation"`
	Parties   string `json:"parties"`
	Holdings  string `json:"holdings"`
	Relevance int    `json:"relevance"`
	Date      string `json:"date,omitempty"`
	Source    string `json:"source,omitempty"`
	DocID     string `json:"doc_id,omitempty"`
}

// Label renders the case as "Parties (Citation)" for summaries and metadata
func (c CaseHistory) Label() string {
	return fmt.Sprintf("%s (%s)", c.Parties, c.Citation)
}

// LegalDomain is a coarse practice area scored against a brief. Domains are
// non-exclusive; Relevance grows with KeywordMatches and is capped at 1.0.
type LegalDomain struct {
	Name           string  `json:"name"`
	Relevance      float64 `json:"relevance"`
	KeywordMatches int     `json:"keyword_match_count"`
}
