package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/models"
)

func TestDraftDocumentEmptyTextYieldsPlaceholderDocument(t *testing.T) {
	s := NewDraftJobService()

	result, err := s.DraftDocument(context.Background(), DraftDocumentRequest{
		Text:         "",
		DocumentType: models.DocumentTypePetition,
	})
	require.NoError(t, err)
	require.NotNil(t, result.Document)
	require.NotNil(t, result.Snapshot)

	// Every section of the schema is generated, filled entirely from
	// placeholders
	doc := result.Document
	assert.NotEmpty(t, doc.Content)
	for _, name := range models.DocumentTypePetition.SectionNames() {
		assert.NotEmpty(t, doc.Sections[name], "section %s", name)
	}
	assert.Contains(t, doc.Content, "PETITIONER NAME")
	assert.Empty(t, doc.Metadata.BasedOnBriefExcerpt)

	// Analysis degrades to the general domain with generic content
	require.Len(t, result.Snapshot.Analysis.Domains, 1)
	assert.Equal(t, GeneralDomain, result.Snapshot.Analysis.Domains[0].Name)
	require.NotNil(t, result.Snapshot.Result)
	assert.GreaterOrEqual(t, len(result.Snapshot.Result.Arguments), minArguments)
}

func TestDraftDocumentUnsupportedTypeRejected(t *testing.T) {
	s := NewDraftJobService()

	_, err := s.DraftDocument(context.Background(), DraftDocumentRequest{
		Text:         sampleBrief,
		DocumentType: models.DocumentType("contract"),
	})
	assert.ErrorIs(t, err, ErrUnsupportedDocumentType)
}

func TestDraftDocumentRecordsBriefExcerpt(t *testing.T) {
	s := NewDraftJobService()

	result, err := s.DraftDocument(context.Background(), DraftDocumentRequest{
		Text:         sampleBrief,
		DocumentType: models.DocumentTypePetition,
	})
	require.NoError(t, err)

	excerpt := result.Document.Metadata.BasedOnBriefExcerpt
	assert.True(t, strings.HasPrefix(excerpt, sampleBrief[:100]))
	assert.True(t, strings.HasSuffix(excerpt, "..."))
	assert.Len(t, []rune(excerpt), 103)
}
