package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"lexassist-backend/models"
)

const (
	indianKanoonBaseURL = "https://api.indiankanoon.org"
	maxResultsPerQuery  = 3
)

// IndianKanoonConnector queries the Indian Kanoon API. Authentication uses
// the "Token" scheme on the Authorization header.
type IndianKanoonConnector struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewIndianKanoonConnector creates a connector for the Indian Kanoon API
func NewIndianKanoonConnector(apiKey string) *IndianKanoonConnector {
	return &IndianKanoonConnector{
		apiKey:  apiKey,
		baseURL: indianKanoonBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name identifies this connector in aggregator logs
func (c *IndianKanoonConnector) Name() string {
	return "indian_kanoon"
}

type kanoonDoc struct {
	TID      json.Number `json:"tid"`
	Title    string      `json:"title"`
	Headline string      `json:"headline"`
	DocDate  string      `json:"docdate"`
}

type kanoonSearchResponse struct {
	Docs []kanoonDoc `json:"docs"`
}

func (c *IndianKanoonConnector) search(ctx context.Context, query, docTypes string) (*kanoonSearchResponse, error) {
	endpoint := fmt.Sprintf("%s/search/", c.baseURL)

	params := url.Values{}
	params.Set("formInput", query)
	params.Set("pagenum", "0")
	params.Set("maxcites", "5")
	if docTypes != "" {
		params.Set("doctypes", docTypes)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("indian kanoon request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("indian kanoon API error: %d", resp.StatusCode)
	}

	var result kanoonSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &result, nil
}

// SearchLawSections searches statutory documents. Act+section pair queries
// are scored at the exact-match tier; everything else at the concept tier.
// A failed query is logged and skipped so one bad request cannot empty the
// whole result set.
func (c *IndianKanoonConnector) SearchLawSections(ctx context.Context, params SearchParams) ([]models.LawSection, error) {
	var sections []models.LawSection
	seen := make(map[string]bool)

	// Exact act+section lookups first
	for _, pair := range params.ActSectionPairs() {
		query := pair.Query()

		resp, err := c.search(ctx, query, "laws")
		if err != nil {
			log.Printf("Warning: indian kanoon law query %q failed: %v", query, err)
			continue
		}

		for _, doc := range limitDocs(resp.Docs, maxResultsPerQuery) {
			s := models.LawSection{
				Act:           pair.Act,
				SectionNumber: pair.Section,
				Content:       cleanSnippet(doc.Headline),
				Relevance:     models.RelevanceExactMatch,
				Source:        "Indian Kanoon",
				SourceDocID:   doc.TID.String(),
			}
			if s.SectionNumber == "" {
				s.SectionNumber = "N/A"
			}
			if !seen[s.Key()] {
				seen[s.Key()] = true
				sections = append(sections, s)
			}
		}
	}

	// Concept queries from keywords
	for _, keyword := range limitStrings(params.Keywords, 5) {
		resp, err := c.search(ctx, keyword, "laws")
		if err != nil {
			log.Printf("Warning: indian kanoon law query %q failed: %v", keyword, err)
			continue
		}

		for _, doc := range limitDocs(resp.Docs, 2) {
			act, section := parseActSectionFromTitle(doc.Title)
			s := models.LawSection{
				Act:           act,
				SectionNumber: section,
				Content:       cleanSnippet(doc.Headline),
				Relevance:     models.RelevanceConceptMatch,
				Source:        "Indian Kanoon",
				SourceDocID:   doc.TID.String(),
			}
			if !seen[s.Key()] {
				seen[s.Key()] = true
				sections = append(sections, s)
			}
		}
	}

	return sections, nil
}

// SearchCaseHistory searches decided cases across the Supreme Court and
// High Courts
func (c *IndianKanoonConnector) SearchCaseHistory(ctx context.Context, params SearchParams) ([]models.CaseHistory, error) {
	var cases []models.CaseHistory
	seen := make(map[string]bool)

	queries := params.Queries
	if len(queries) == 0 {
		queries = params.Keywords
	}

	for _, query := range limitStrings(queries, 5) {
		resp, err := c.search(ctx, query, "supremecourt,highcourts")
		if err != nil {
			log.Printf("Warning: indian kanoon case query %q failed: %v", query, err)
			continue
		}

		relevance := models.RelevanceConceptMatch
		if looksLikeCitation(query) {
			relevance = models.RelevanceExactMatch
		}

		for _, doc := range limitDocs(resp.Docs, maxResultsPerQuery) {
			h := models.CaseHistory{
				Citation:  citationFromTitle(doc.Title),
				Parties:   doc.Title,
				Holdings:  cleanSnippet(doc.Headline),
				Relevance: relevance,
				Date:      doc.DocDate,
				Source:    "Indian Kanoon",
				DocID:     doc.TID.String(),
			}
			if !seen[h.Citation] {
				seen[h.Citation] = true
				cases = append(cases, h)
			}
		}
	}

	return cases, nil
}

var (
	titleActSectionRe = regexp.MustCompile(`(?i)(.*?),?\s*(?:Section|Sec\.|S\.|§)\s*(\d+(?:\([a-zA-Z0-9]\))?(?:-\d+)?)`)
	titleCitationRe   = regexp.MustCompile(`(?:AIR\s+\d{4}\s+SC\s+\d+|\(\d{4}\)\s+\d+\s+SCC\s+\d+|\d{4}\s+SCR\s+\d+)`)
	citationQueryRe   = regexp.MustCompile(`(?:AIR|SCC|SCR)`)
	htmlTagRe         = regexp.MustCompile(`<[^>]+>`)
)

func parseActSectionFromTitle(title string) (act, section string) {
	if m := titleActSectionRe.FindStringSubmatch(title); m != nil {
		act = strings.TrimSpace(m[1])
		section = m[2]
	}
	if act == "" {
		act = title
		if act == "" {
			act = "Unknown Act"
		}
	}
	if section == "" {
		section = "N/A"
	}
	return act, section
}

func citationFromTitle(title string) string {
	if m := titleCitationRe.FindString(title); m != "" {
		return m
	}
	return title
}

func looksLikeCitation(query string) bool {
	return citationQueryRe.MatchString(query)
}

// cleanSnippet strips search-result highlight markup from API headlines
func cleanSnippet(s string) string {
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func limitDocs(docs []kanoonDoc, n int) []kanoonDoc {
	if len(docs) > n {
		return docs[:n]
	}
	return docs
}

func limitStrings(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
