package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/models"
)

func TestGenerateQueriesOrdering(t *testing.T) {
	entities := []models.Entity{
		{Type: models.EntityPerson, Text: "Rajesh Kumar", Relevance: 1.0},
	}
	actSections := []models.ActSection{
		{Act: "Indian Penal Code", Section: "420"},
	}
	citations := []models.CaseCitation{
		{Type: models.CitationAIR, Year: 2017, Page: 567, Raw: "AIR 2017 SC 567"},
	}
	domains := []models.LegalDomain{
		{Name: "criminal", Relevance: 1.0},
		{Name: "civil", Relevance: 0.5},
	}

	// Lowercase text keeps noun-phrase extraction out of the picture.
	queries := GenerateQueries("the fraud was committed", entities, actSections, citations, domains)

	assert.Equal(t, []string{
		"Indian Penal Code section 420",
		"AIR 2017 SC 567",
		"Rajesh Kumar fraud",
		"criminal law",
		"civil law",
	}, queries)
}

func TestGenerateQueriesCap(t *testing.T) {
	var actSections []models.ActSection
	for i := 1; i <= 12; i++ {
		actSections = append(actSections, models.ActSection{
			Act:     "Indian Penal Code",
			Section: fmt.Sprintf("%d", 400+i),
		})
	}

	queries := GenerateQueries("", nil, actSections, nil, nil)
	require.Len(t, queries, maxQueries)
	assert.Equal(t, "Indian Penal Code section 401", queries[0])
	assert.Equal(t, "Indian Penal Code section 410", queries[9])
}

func TestGenerateQueriesDeduplicates(t *testing.T) {
	actSections := []models.ActSection{
		{Act: "Indian Penal Code", Section: "420"},
		{Act: "Indian Penal Code", Section: "420"},
	}

	queries := GenerateQueries("", nil, actSections, nil, nil)
	assert.Equal(t, []string{"Indian Penal Code section 420"}, queries)
}

func TestGenerateQueriesSkipsLowRelevanceEntities(t *testing.T) {
	entities := []models.Entity{
		{Type: models.EntityPerson, Text: "Rajesh Kumar", Relevance: 0.5},
		{Type: models.EntityLocation, Text: "Delhi", Relevance: 1.0},
	}

	queries := GenerateQueries("the fraud was committed", entities, nil, nil, nil)
	assert.Empty(t, queries)
}

func TestGenerateQueriesGeneralDomainExcluded(t *testing.T) {
	domains := []models.LegalDomain{{Name: GeneralDomain, Relevance: 0}}

	queries := GenerateQueries("nothing here", nil, nil, nil, domains)
	assert.Empty(t, queries)
}

func TestExtractNounPhrases(t *testing.T) {
	phrases := extractNounPhrases("The Supreme Court ruled that Delhi Development Authority acted illegally.", 5)
	assert.Equal(t, []string{"The Supreme Court", "Delhi Development Authority"}, phrases)
}

func TestExtractNounPhrasesSkipsSingleWords(t *testing.T) {
	phrases := extractNounPhrases("Delhi was mentioned here.", 5)
	assert.Empty(t, phrases)
}
