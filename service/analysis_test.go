package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/models"
)

func TestSynthesizeAnalysisEmptyResearchUsesGenerics(t *testing.T) {
	analysis := models.BriefAnalysis{
		Domains: []models.LegalDomain{{Name: GeneralDomain}},
	}

	result := SynthesizeAnalysis(analysis, nil, nil)

	assert.Equal(t, genericArguments, result.Arguments)
	assert.Equal(t, genericChallenges[:minChallenges], result.Challenges)
	assert.Equal(t, genericRecommendations[:minRecommendations], result.Recommendations)
	assert.Contains(t, result.Summary, "legal strategies")
	assert.Empty(t, result.Statutes)
	assert.Empty(t, result.Precedents)
}

func TestSynthesizeAnalysisWithResearch(t *testing.T) {
	analysis := models.BriefAnalysis{
		Acts:    []string{"Indian Penal Code"},
		Domains: []models.LegalDomain{{Name: "criminal", Relevance: 1.0}},
	}
	sections := []models.LawSection{
		{Act: "Indian Penal Code", SectionNumber: "420", Content: "Cheating and dishonestly inducing delivery of property", Relevance: 9},
	}
	cases := []models.CaseHistory{
		{Citation: "AIR 2017 SC 567", Parties: "State v. Sharma", Holdings: "mens rea must be established", Relevance: 8},
	}

	result := SynthesizeAnalysis(analysis, sections, cases)

	require.NotEmpty(t, result.Arguments)
	assert.True(t, strings.HasPrefix(result.Arguments[0], "Under Indian Penal Code Section 420"))
	assert.Contains(t, result.Arguments[1], "State v. Sharma")
	assert.Contains(t, result.Arguments[1], "mens rea must be established")

	assert.Equal(t, []string{"Indian Penal Code Section 420"}, result.Statutes)
	assert.Equal(t, []string{"State v. Sharma (AIR 2017 SC 567)"}, result.Precedents)

	assert.Contains(t, result.Summary, "This case involves criminal law issues.")
	assert.Contains(t, result.Summary, "Indian Penal Code")
}

func TestSynthesizeAnalysisDomainSpecificChallenges(t *testing.T) {
	analysis := models.BriefAnalysis{
		Domains: []models.LegalDomain{
			{Name: "criminal", Relevance: 1.0},
			{Name: "civil", Relevance: 0.8},
		},
	}

	result := SynthesizeAnalysis(analysis, nil, nil)

	assert.Contains(t, result.Challenges[0], "criminal intent")
	assert.Contains(t, result.Challenges[1], "causation")
	assert.Len(t, result.Challenges, minChallenges)

	assert.Contains(t, result.Recommendations[0], "investigation procedure")
	assert.Contains(t, result.Recommendations[1], "Quantify damages")
	assert.Len(t, result.Recommendations, minRecommendations)
}

func TestSynthesizeAnalysisCapsLists(t *testing.T) {
	var sections []models.LawSection
	for _, n := range []string{"415", "417", "418", "420", "463"} {
		sections = append(sections, models.LawSection{
			Act:           "Indian Penal Code",
			SectionNumber: n,
			Content:       "provision text",
			Relevance:     5,
		})
	}
	cases := []models.CaseHistory{
		{Citation: "AIR 2017 SC 567", Parties: "A v. B", Holdings: "first holding"},
		{Citation: "(2018) 4 SCC 89", Parties: "C v. D", Holdings: "second holding"},
		{Citation: "1995 SCR 412", Parties: "E v. F", Holdings: "third holding"},
	}

	result := SynthesizeAnalysis(models.BriefAnalysis{}, sections, cases)

	// 3 section arguments + 2 case arguments, nothing generic
	require.Len(t, result.Arguments, maxArguments)
	for _, arg := range result.Arguments {
		assert.NotContains(t, genericArguments, arg)
	}
	assert.Len(t, result.Statutes, 5)
	assert.Len(t, result.Precedents, 3)
}

func TestSynthesizeAnalysisTruncatesLongSectionContent(t *testing.T) {
	sections := []models.LawSection{
		{Act: "Indian Penal Code", SectionNumber: "420", Content: strings.Repeat("x", 150), Relevance: 5},
	}

	result := SynthesizeAnalysis(models.BriefAnalysis{}, sections, nil)

	require.NotEmpty(t, result.Arguments)
	assert.True(t, strings.HasSuffix(result.Arguments[0], "..."))
	assert.Contains(t, result.Arguments[0], strings.Repeat("x", 100))
	assert.NotContains(t, result.Arguments[0], strings.Repeat("x", 101))
}

func TestSynthesizeAnalysisTruncationKeepsRuneBoundaries(t *testing.T) {
	sections := []models.LawSection{
		{Act: "Indian Penal Code", SectionNumber: "420", Content: strings.Repeat("क", 130), Relevance: 5},
	}

	result := SynthesizeAnalysis(models.BriefAnalysis{}, sections, nil)

	require.NotEmpty(t, result.Arguments)
	assert.True(t, utf8.ValidString(result.Arguments[0]))
	assert.Contains(t, result.Arguments[0], strings.Repeat("क", 100)+"...")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "abc...", truncateRunes("abcdef", 3))
	assert.Equal(t, "कख...", truncateRunes("कखगघ", 2))
}
