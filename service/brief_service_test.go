package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/models"
)

const sampleBrief = "Mr. Rajesh Kumar entered into a contract with Krishna Builders Pvt Ltd " +
	"for a flat in Mumbai worth Rs. 50,00,000. The builder committed breach of the agreement " +
	"under Section 73 of the Indian Contract Act. The petitioner is Rajesh Kumar. " +
	"The respondent is Krishna Builders Pvt Ltd. Reliance is placed on AIR 2017 SC 567."

func TestAnalyzeText(t *testing.T) {
	s := NewBriefService()

	analysis, err := s.AnalyzeText(context.Background(), sampleBrief)
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.Contains(t, analysis.Acts, "Indian Contract Act")
	require.NotEmpty(t, analysis.ActSections)
	assert.Equal(t, "Indian Contract Act", analysis.ActSections[0].Act)
	assert.Equal(t, "73", analysis.ActSections[0].Section)

	require.NotEmpty(t, analysis.Citations)
	assert.Equal(t, "AIR 2017 SC 567", analysis.Citations[0].String())

	assert.Equal(t, "Rajesh Kumar", analysis.Parties.Petitioner(""))

	require.NotEmpty(t, analysis.Domains)
	assert.Equal(t, "civil", analysis.Domains[0].Name)

	assert.NotEmpty(t, analysis.Keywords)
	assert.NotEmpty(t, analysis.Summary)

	require.NotEmpty(t, analysis.Queries)
	assert.Equal(t, "Indian Contract Act section 73", analysis.Queries[0])
	assert.LessOrEqual(t, len(analysis.Queries), maxQueries)
}

func TestAnalyzeTextEmptyDegrades(t *testing.T) {
	s := NewBriefService()

	analysis, err := s.AnalyzeText(context.Background(), "   \n\t  ")
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.Empty(t, analysis.Summary)
	assert.Empty(t, analysis.Acts)
	assert.Empty(t, analysis.Citations)
	assert.Empty(t, analysis.Queries)
	require.Len(t, analysis.Domains, 1)
	assert.Equal(t, GeneralDomain, analysis.Domains[0].Name)
}

func TestSummarizeShortTextReturnedWhole(t *testing.T) {
	text := "First sentence. Second sentence. Third sentence."
	assert.Equal(t, text, summarize(text))
}

func TestSummarizeLongTextFirstTwoPlusLast(t *testing.T) {
	text := "One fact here. Two facts here. Three facts here. Four facts here. Final conclusion here."

	summary := summarize(text)
	assert.Equal(t, "One fact here Two facts here Final conclusion here", summary)
	assert.NotContains(t, summary, "Three facts")
}

func TestAnalyzeBriefSkipResearch(t *testing.T) {
	s := NewBriefService()

	result, err := s.AnalyzeBrief(context.Background(), AnalyzeBriefRequest{
		Text:         sampleBrief,
		SkipResearch: true,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Snapshot)

	assert.Nil(t, result.Snapshot.Research)
	assert.Nil(t, result.Snapshot.Result)
	assert.NotEmpty(t, result.Snapshot.Analysis.Keywords)
}

func TestAnalyzeBriefWithResearch(t *testing.T) {
	s := NewBriefService(WithResearchAggregator(NewResearchAggregator(
		AggregatorWithConnectors(&fakeConnector{
			name: "corpus",
			sections: []models.LawSection{
				{Act: "Indian Contract Act", SectionNumber: "73", Content: "compensation for breach", Relevance: 8},
			},
			cases: []models.CaseHistory{
				{Citation: "AIR 2017 SC 567", Parties: "Mehta vs. Patel", Holdings: "damages must be proved", Relevance: 7},
			},
		}),
	)))

	result, err := s.AnalyzeBrief(context.Background(), AnalyzeBriefRequest{Text: sampleBrief})
	require.NoError(t, err)

	require.NotNil(t, result.Snapshot.Research)
	assert.Len(t, result.Snapshot.Research.LawSections, 1)
	assert.Len(t, result.Snapshot.Research.CaseHistory, 1)

	require.NotNil(t, result.Snapshot.Result)
	assert.NotEmpty(t, result.Snapshot.Result.Summary)
	assert.GreaterOrEqual(t, len(result.Snapshot.Result.Arguments), minArguments)
}

func TestSearchParamsFromAnalysis(t *testing.T) {
	analysis := &models.BriefAnalysis{
		Keywords: []string{"contract", "breach"},
		Acts:     []string{"Indian Contract Act", "Indian Penal Code"},
		ActSections: []models.ActSection{
			{Act: "Indian Contract Act", Section: "73"},
		},
		Domains: []models.LegalDomain{{Name: "civil"}},
		Queries: []string{"Indian Contract Act section 73"},
	}

	params := searchParamsFromAnalysis(analysis)

	assert.Equal(t, []string{"contract", "breach"}, params.Keywords)
	// Act from the section pair first, remaining acts appended without duplicates
	assert.Equal(t, []string{"Indian Contract Act", "Indian Penal Code"}, params.Acts)
	assert.Equal(t, []string{"73"}, params.Sections)
	assert.Equal(t, []string{"civil"}, params.Domains)
	assert.Equal(t, analysis.ActSections, params.ActSections)

	// Explicit pairs come first, bare acts follow
	pairs := params.ActSectionPairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "Indian Contract Act section 73", pairs[0].Query())
	assert.Equal(t, "Indian Penal Code", pairs[1].Query())
}

func TestDefaultTitle(t *testing.T) {
	assert.Equal(t, "The petitioner seeks relief", defaultTitle("The petitioner seeks relief. More text follows."))
	assert.Equal(t, "Untitled Brief", defaultTitle("   "))

	long := strings.Repeat("word ", 40)
	title := defaultTitle(long)
	assert.LessOrEqual(t, len(title), 83)
}
