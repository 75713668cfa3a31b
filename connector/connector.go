// Package connector provides legal-database connectors. Each connector
// answers law-section and case-history searches for a set of query
// parameters; the research aggregator in service fans out across all
// configured connectors.
package connector

import (
	"context"

	"lexassist-backend/models"
)

// SearchParams are the query parameters derived from brief analysis.
// Acts and Sections are independent term lists with no positional
// relationship; statutory act+section lookups come from ActSections.
type SearchParams struct {
	Keywords    []string            `json:"keywords"`
	Acts        []string            `json:"acts"`
	Sections    []string            `json:"sections"`
	ActSections []models.ActSection `json:"act_sections,omitempty"`
	Domains     []string            `json:"domains"`
	Queries     []string            `json:"queries,omitempty"`
}

// ActSectionPairs returns the statutory references to query exactly:
// the explicit ActSections plus any act from the flat list not already
// covered, carried as a bare-act reference.
func (p SearchParams) ActSectionPairs() []models.ActSection {
	pairs := append([]models.ActSection{}, p.ActSections...)
	seen := make(map[string]bool, len(pairs))
	for _, pair := range pairs {
		seen[pair.Act] = true
	}
	for _, act := range p.Acts {
		if !seen[act] {
			seen[act] = true
			pairs = append(pairs, models.ActSection{Act: act})
		}
	}
	return pairs
}

// Connector is a searchable legal database. Implementations must return
// empty slices, not errors, when nothing matches; errors are reserved for
// transport failures.
type Connector interface {
	Name() string
	SearchLawSections(ctx context.Context, params SearchParams) ([]models.LawSection, error)
	SearchCaseHistory(ctx context.Context, params SearchParams) ([]models.CaseHistory, error)
}
