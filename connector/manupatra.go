package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lexassist-backend/models"
)

const manupatraBaseURL = "https://api.manupatrafast.com/v1"

// ManupatraConnector queries the Manupatra legal database. Authentication
// uses a Bearer token on the Authorization header.
type ManupatraConnector struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewManupatraConnector creates a connector for the Manupatra API
func NewManupatraConnector(apiKey string) *ManupatraConnector {
	return &ManupatraConnector{
		apiKey:  apiKey,
		baseURL: manupatraBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name identifies this connector in aggregator logs
func (c *ManupatraConnector) Name() string {
	return "manupatra"
}

type manupatraLawResult struct {
	Title         string `json:"title"`
	SectionNumber string `json:"sectionNumber"`
	Content       string `json:"content"`
	Relevance     int    `json:"relevance"`
	DocID         string `json:"docId"`
}

type manupatraCaseResult struct {
	Citation  string `json:"citation"`
	Parties   string `json:"parties"`
	Holdings  string `json:"holdings"`
	Relevance int    `json:"relevance"`
	Date      string `json:"date"`
	DocID     string `json:"docId"`
}

type manupatraLawResponse struct {
	Results []manupatraLawResult `json:"results"`
}

type manupatraCaseResponse struct {
	Results []manupatraCaseResult `json:"results"`
}

func (c *ManupatraConnector) get(ctx context.Context, path string, params SearchParams, out interface{}) error {
	values := url.Values{}
	if len(params.Keywords) > 0 {
		values.Set("keywords", strings.Join(params.Keywords, ","))
	}
	if len(params.Acts) > 0 {
		values.Set("acts", strings.Join(params.Acts, ","))
	}
	if len(params.Sections) > 0 {
		values.Set("sections", strings.Join(params.Sections, ","))
	}
	if len(params.Domains) > 0 {
		values.Set("domains", strings.Join(params.Domains, ","))
	}

	endpoint := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("manupatra request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("manupatra API error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// SearchLawSections searches Manupatra's statutory database
func (c *ManupatraConnector) SearchLawSections(ctx context.Context, params SearchParams) ([]models.LawSection, error) {
	var resp manupatraLawResponse
	if err := c.get(ctx, "/laws/search", params, &resp); err != nil {
		return nil, err
	}

	sections := make([]models.LawSection, 0, len(resp.Results))
	for _, r := range resp.Results {
		relevance := r.Relevance
		if relevance <= 0 || relevance > models.RelevanceMax {
			relevance = models.RelevanceConceptMatch
		}
		sections = append(sections, models.LawSection{
			Act:           r.Title,
			SectionNumber: r.SectionNumber,
			Content:       r.Content,
			Relevance:     relevance,
			Source:        "Manupatra",
			SourceDocID:   r.DocID,
		})
	}

	return sections, nil
}

// SearchCaseHistory searches Manupatra's case-law database
func (c *ManupatraConnector) SearchCaseHistory(ctx context.Context, params SearchParams) ([]models.CaseHistory, error) {
	var resp manupatraCaseResponse
	if err := c.get(ctx, "/cases/search", params, &resp); err != nil {
		return nil, err
	}

	cases := make([]models.CaseHistory, 0, len(resp.Results))
	for _, r := range resp.Results {
		relevance := r.Relevance
		if relevance <= 0 || relevance > models.RelevanceMax {
			relevance = models.RelevanceConceptMatch
		}
		cases = append(cases, models.CaseHistory{
			Citation:  r.Citation,
			Parties:   r.Parties,
			Holdings:  r.Holdings,
			Relevance: relevance,
			Date:      r.Date,
			Source:    "Manupatra",
			DocID:     r.DocID,
		})
	}

	return cases, nil
}
