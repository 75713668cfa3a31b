package service

import (
	"strings"

	"lexassist-backend/models"
)

const (
	maxQueries         = 10
	maxPhraseQueries   = 5
	maxEntityQueries   = 3
	entityRelevanceMin = 0.7
)

// GenerateQueries builds a bounded, deduplicated list of search queries.
// Act/section and citation queries are inserted first so the cap never
// starves them; noun phrases and entity+term combinations fill the rest.
func GenerateQueries(text string, entities []models.Entity, actSections []models.ActSection, citations []models.CaseCitation, domains []models.LegalDomain) []string {
	var queries []string
	seen := make(map[string]bool)

	add := func(q string) bool {
		q = strings.TrimSpace(q)
		if q == "" || seen[q] {
			return len(queries) < maxQueries
		}
		if len(queries) >= maxQueries {
			return false
		}
		seen[q] = true
		queries = append(queries, q)
		return len(queries) < maxQueries
	}

	// Exact statutory references first
	for _, ref := range actSections {
		if !add(ref.Query()) {
			return queries
		}
	}

	// Then reporter citations
	for _, c := range citations {
		if !add(c.String()) {
			return queries
		}
	}

	// Noun phrases from the text
	for _, phrase := range extractNounPhrases(text, maxPhraseQueries) {
		if !add(phrase) {
			return queries
		}
	}

	// Top entities crossed with the first legal term found
	terms := ExtractLegalTerms(text)
	if len(terms) > 0 {
		count := 0
		for _, e := range entities {
			if count >= maxEntityQueries {
				break
			}
			if e.Relevance <= entityRelevanceMin {
				continue
			}
			if e.Type != models.EntityPerson && e.Type != models.EntityOrganization {
				continue
			}
			count++
			if !add(e.Text + " " + terms[0]) {
				return queries
			}
		}
	}

	// Domain names as a last resort so minimal briefs still produce queries
	for i, d := range domains {
		if i >= 2 || d.Name == GeneralDomain {
			break
		}
		if !add(d.Name + " law") {
			return queries
		}
	}

	return queries
}

// extractNounPhrases approximates noun-phrase chunking: runs of 2-5
// capitalized or legal-term words. A full parser is not needed here; the
// phrases only seed concept searches.
func extractNounPhrases(text string, limit int) []string {
	var phrases []string
	seen := make(map[string]bool)

	words := strings.Fields(text)
	var run []string

	flush := func() {
		if len(run) >= 2 && len(run) <= 5 {
			phrase := strings.Join(run, " ")
			if !seen[phrase] {
				seen[phrase] = true
				phrases = append(phrases, phrase)
			}
		}
		run = nil
	}

	for _, w := range words {
		trimmed := strings.Trim(w, ".,;:()\"'")
		if trimmed == "" {
			flush()
			continue
		}
		first := trimmed[0]
		if first >= 'A' && first <= 'Z' {
			run = append(run, trimmed)
		} else {
			flush()
		}
		if len(phrases) >= limit {
			break
		}
	}
	flush()

	if len(phrases) > limit {
		phrases = phrases[:limit]
	}

	return phrases
}
