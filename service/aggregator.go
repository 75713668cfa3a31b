package service

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"lexassist-backend/connector"
	"lexassist-backend/models"
)

const connectorTimeout = 10 * time.Second

// ResearchAggregator fans a search out across all configured connectors,
// merges the results, deduplicates and relevance-ranks them. A failing or
// slow connector contributes nothing; it never aborts the search.
type ResearchAggregator struct {
	connectors []connector.Connector
	timeout    time.Duration
}

// AggregatorOption is a functional option for ResearchAggregator
type AggregatorOption func(*ResearchAggregator)

// AggregatorWithConnectors sets the connectors to query
func AggregatorWithConnectors(connectors ...connector.Connector) AggregatorOption {
	return func(a *ResearchAggregator) {
		a.connectors = append(a.connectors, connectors...)
	}
}

// AggregatorWithTimeout overrides the per-connector timeout
func AggregatorWithTimeout(timeout time.Duration) AggregatorOption {
	return func(a *ResearchAggregator) {
		a.timeout = timeout
	}
}

// NewResearchAggregator creates a research aggregator
func NewResearchAggregator(opts ...AggregatorOption) *ResearchAggregator {
	a := &ResearchAggregator{
		timeout: connectorTimeout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SearchLawSections queries every connector concurrently and returns the
// merged result set, deduplicated by (act, section) with max relevance
// winning, sorted descending by relevance (stable on ties)
func (a *ResearchAggregator) SearchLawSections(ctx context.Context, params connector.SearchParams) []models.LawSection {
	results := fanOut(ctx, a.connectors, a.timeout, func(ctx context.Context, c connector.Connector) ([]models.LawSection, error) {
		return c.SearchLawSections(ctx, params)
	})

	return dedupeLawSections(results)
}

// SearchCaseHistory queries every connector concurrently and returns the
// merged result set, deduplicated by citation with max relevance winning,
// sorted descending by relevance (stable on ties)
func (a *ResearchAggregator) SearchCaseHistory(ctx context.Context, params connector.SearchParams) []models.CaseHistory {
	results := fanOut(ctx, a.connectors, a.timeout, func(ctx context.Context, c connector.Connector) ([]models.CaseHistory, error) {
		return c.SearchCaseHistory(ctx, params)
	})

	return dedupeCaseHistory(results)
}

// fanOut invokes search on all connectors in parallel with per-connector
// timeout and error isolation. Results are concatenated in connector order
// so final ranking never depends on completion order.
func fanOut[T any](ctx context.Context, connectors []connector.Connector, timeout time.Duration, search func(context.Context, connector.Connector) ([]T, error)) []T {
	perConnector := make([][]T, len(connectors))

	var wg sync.WaitGroup
	for i, c := range connectors {
		wg.Add(1)
		go func(i int, c connector.Connector) {
			defer wg.Done()

			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			results, err := search(callCtx, c)
			if err != nil {
				log.Printf("Warning: connector %s failed: %v", c.Name(), err)
				return
			}
			perConnector[i] = results
		}(i, c)
	}
	wg.Wait()

	var all []T
	for _, results := range perConnector {
		all = append(all, results...)
	}
	return all
}

func dedupeLawSections(sections []models.LawSection) []models.LawSection {
	byKey := make(map[string]int)
	deduped := make([]models.LawSection, 0, len(sections))

	for _, s := range sections {
		key := s.Key()
		if idx, ok := byKey[key]; ok {
			if s.Relevance > deduped[idx].Relevance {
				deduped[idx] = s
			}
			continue
		}
		byKey[key] = len(deduped)
		deduped = append(deduped, s)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Relevance > deduped[j].Relevance
	})

	return deduped
}

func dedupeCaseHistory(cases []models.CaseHistory) []models.CaseHistory {
	byCitation := make(map[string]int)
	deduped := make([]models.CaseHistory, 0, len(cases))

	for _, c := range cases {
		if idx, ok := byCitation[c.Citation]; ok {
			if c.Relevance > deduped[idx].Relevance {
				deduped[idx] = c
			}
			continue
		}
		byCitation[c.Citation] = len(deduped)
		deduped = append(deduped, c)
	}

	sort.SliceStable(deduped, func(i, j int) bool {
		return deduped[i].Relevance > deduped[j].Relevance
	})

	return deduped
}
