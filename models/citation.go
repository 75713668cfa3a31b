package models

import "fmt"

// CitationType identifies the law reporter a case citation belongs to
type CitationType string

const (
	CitationAIR CitationType = "AIR"
	CitationSCC CitationType = "SCC"
	CitationSCR CitationType = "SCR"
)

// CaseCitation is a structured reporter citation. AIR and SCR citations
// carry year+page; SCC citations additionally carry a volume.
type CaseCitation struct {
	Type   CitationType `json:"type"`
	Year   int          `json:"year"`
	Volume int          `json:"volume,omitempty"`
	Page   int          `json:"page"`
	Raw    string       `json:"raw_citation"`
}

// String renders the citation in its reporter's conventional form
func (c CaseCitation) String() string {
	switch c.Type {
	case CitationAIR:
		return fmt.Sprintf("AIR %d SC %d", c.Year, c.Page)
	case CitationSCC:
		return fmt.Sprintf("(%d) %d SCC %d", c.Year, c.Volume, c.Page)
	case CitationSCR:
		return fmt.Sprintf("%d SCR %d", c.Year, c.Page)
	}
	return c.Raw
}

// Equal reports structural equality. No normalization is attempted across
// reporter formats; two citations are the same only if type, year, page
// and (for SCC) volume all match.
func (c CaseCitation) Equal(other CaseCitation) bool {
	if c.Type != other.Type || c.Year != other.Year || c.Page != other.Page {
		return false
	}
	if c.Type == CitationSCC && c.Volume != other.Volume {
		return false
	}
	return true
}

// ActSection is a reference to a statutory provision. Section may be empty
// when an act is mentioned without a specific section.
type ActSection struct {
	Act       string  `json:"act"`
	Section   string  `json:"section,omitempty"`
	Relevance float64 `json:"relevance"`
}

// Query renders the reference as a search query string
func (a ActSection) Query() string {
	if a.Section == "" {
		return a.Act
	}
	return fmt.Sprintf("%s section %s", a.Act, a.Section)
}
