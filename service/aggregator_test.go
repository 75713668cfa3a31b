package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/connector"
	"lexassist-backend/models"
)

// fakeConnector returns canned results, or an error when err is set.
type fakeConnector struct {
	name     string
	sections []models.LawSection
	cases    []models.CaseHistory
	err      error
}

func (f *fakeConnector) Name() string { return f.name }

func (f *fakeConnector) SearchLawSections(ctx context.Context, params connector.SearchParams) ([]models.LawSection, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sections, nil
}

func (f *fakeConnector) SearchCaseHistory(ctx context.Context, params connector.SearchParams) ([]models.CaseHistory, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cases, nil
}

func TestSearchLawSectionsMergesConnectorResults(t *testing.T) {
	a := NewResearchAggregator(AggregatorWithConnectors(
		&fakeConnector{name: "first", sections: []models.LawSection{
			{Act: "Indian Penal Code", SectionNumber: "420", Relevance: 7},
		}},
		&fakeConnector{name: "second", sections: []models.LawSection{
			{Act: "Indian Contract Act", SectionNumber: "73", Relevance: 5},
		}},
	))

	sections := a.SearchLawSections(context.Background(), connector.SearchParams{Keywords: []string{"fraud"}})
	require.Len(t, sections, 2)
	assert.Equal(t, "Indian Penal Code", sections[0].Act)
	assert.Equal(t, "Indian Contract Act", sections[1].Act)
}

func TestSearchLawSectionsConnectorFailureIsolated(t *testing.T) {
	a := NewResearchAggregator(AggregatorWithConnectors(
		&fakeConnector{name: "broken", err: errors.New("connection refused")},
		&fakeConnector{name: "working", sections: []models.LawSection{
			{Act: "Indian Penal Code", SectionNumber: "420", Relevance: 9},
		}},
	))

	sections := a.SearchLawSections(context.Background(), connector.SearchParams{})
	require.Len(t, sections, 1)
	assert.Equal(t, "420", sections[0].SectionNumber)
}

func TestSearchLawSectionsDeduplicatesMaxRelevanceWins(t *testing.T) {
	a := NewResearchAggregator(AggregatorWithConnectors(
		&fakeConnector{name: "first", sections: []models.LawSection{
			{Act: "Indian Penal Code", SectionNumber: "420", Content: "short", Relevance: 7},
		}},
		&fakeConnector{name: "second", sections: []models.LawSection{
			{Act: "Indian Penal Code", SectionNumber: "420", Content: "detailed", Relevance: 9},
		}},
	))

	sections := a.SearchLawSections(context.Background(), connector.SearchParams{})
	require.Len(t, sections, 1)
	assert.Equal(t, 9, sections[0].Relevance)
	assert.Equal(t, "detailed", sections[0].Content)
}

func TestSearchLawSectionsRankedDescendingStable(t *testing.T) {
	a := NewResearchAggregator(AggregatorWithConnectors(
		&fakeConnector{name: "only", sections: []models.LawSection{
			{Act: "Indian Contract Act", SectionNumber: "73", Relevance: 5},
			{Act: "Indian Penal Code", SectionNumber: "420", Relevance: 9},
			{Act: "Indian Penal Code", SectionNumber: "415", Relevance: 5},
		}},
	))

	sections := a.SearchLawSections(context.Background(), connector.SearchParams{})
	require.Len(t, sections, 3)
	assert.Equal(t, "420", sections[0].SectionNumber)
	// Equal relevance keeps connector order
	assert.Equal(t, "73", sections[1].SectionNumber)
	assert.Equal(t, "415", sections[2].SectionNumber)
}

func TestSearchCaseHistoryDeduplicatesByCitation(t *testing.T) {
	a := NewResearchAggregator(AggregatorWithConnectors(
		&fakeConnector{name: "first", cases: []models.CaseHistory{
			{Citation: "AIR 2017 SC 567", Parties: "A v. B", Relevance: 6},
		}},
		&fakeConnector{name: "second", cases: []models.CaseHistory{
			{Citation: "AIR 2017 SC 567", Parties: "A v. B", Relevance: 8},
			{Citation: "(2018) 4 SCC 89", Parties: "C v. D", Relevance: 5},
		}},
	))

	cases := a.SearchCaseHistory(context.Background(), connector.SearchParams{})
	require.Len(t, cases, 2)
	assert.Equal(t, "AIR 2017 SC 567", cases[0].Citation)
	assert.Equal(t, 8, cases[0].Relevance)
	assert.Equal(t, "(2018) 4 SCC 89", cases[1].Citation)
}

func TestSearchLawSectionsNoConnectors(t *testing.T) {
	a := NewResearchAggregator()

	sections := a.SearchLawSections(context.Background(), connector.SearchParams{Keywords: []string{"fraud"}})
	assert.Empty(t, sections)
}
