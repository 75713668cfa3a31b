package service

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lexassist-backend/models"
)

func TestDraftAllDocumentTypes(t *testing.T) {
	d := NewDrafter()

	analysis := models.BriefAnalysis{
		Parties: models.PartySet{
			Petitioners: []string{"Rajesh Kumar"},
			Respondents: []string{"State of Maharashtra"},
		},
		Acts:    []string{"Indian Penal Code"},
		Domains: []models.LegalDomain{{Name: "criminal", Relevance: 1.0}},
	}

	for _, docType := range models.DocumentTypes() {
		t.Run(string(docType), func(t *testing.T) {
			doc, err := d.Draft(DraftRequest{
				DocumentType: docType,
				Analysis:     analysis,
			})
			require.NoError(t, err)
			require.NotNil(t, doc)

			assert.NotEmpty(t, doc.Content)
			assert.NotContains(t, doc.Content, "_PLACEHOLDER")

			names := docType.SectionNames()
			assert.Len(t, doc.Sections, len(names))
			for _, name := range names {
				assert.Contains(t, doc.Sections, name)
				assert.NotEmpty(t, doc.Sections[name], "section %s", name)
			}

			assert.Equal(t, docType, doc.Metadata.DocumentType)
			assert.Equal(t, []string{"criminal"}, doc.Metadata.Domains)
		})
	}
}

func TestDraftUnsupportedType(t *testing.T) {
	d := NewDrafter()

	_, err := d.Draft(DraftRequest{DocumentType: models.DocumentType("contract")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedDocumentType)
	assert.Contains(t, err.Error(), "contract")
}

func TestDraftSectionOverrides(t *testing.T) {
	d := NewDrafter()

	doc, err := d.Draft(DraftRequest{
		DocumentType: models.DocumentTypePetition,
		Overrides:    map[string]string{"title": "CUSTOM TITLE"},
	})
	require.NoError(t, err)

	assert.Equal(t, "CUSTOM TITLE", doc.Sections["title"])
	assert.Contains(t, doc.Content, "CUSTOM TITLE")
}

func TestDraftCourtAppearsInTitle(t *testing.T) {
	d := NewDrafter()

	doc, err := d.Draft(DraftRequest{
		DocumentType: models.DocumentTypePetition,
		Court:        "HIGH COURT OF DELHI",
	})
	require.NoError(t, err)

	assert.Contains(t, doc.Sections["title"], "HIGH COURT OF DELHI")
}

func TestDraftFixedClock(t *testing.T) {
	fixed := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	d := NewDrafter(DrafterWithClock(func() time.Time { return fixed }))

	doc, err := d.Draft(DraftRequest{DocumentType: models.DocumentTypeLegalNotice})
	require.NoError(t, err)

	assert.Equal(t, fixed, doc.Metadata.GeneratedAt)
	assert.Contains(t, doc.Content, "15/06/2024")
}

func TestDraftMetadataCapsResearchReferences(t *testing.T) {
	d := NewDrafter()

	var sections []models.LawSection
	for _, n := range []string{"415", "417", "418", "420"} {
		sections = append(sections, models.LawSection{Act: "Indian Penal Code", SectionNumber: n, Relevance: 5})
	}
	var cases []models.CaseHistory
	for _, cit := range []string{"AIR 2017 SC 567", "(2018) 4 SCC 89", "1995 SCR 412", "AIR 2001 SC 12"} {
		cases = append(cases, models.CaseHistory{Citation: cit, Parties: "A v. B", Relevance: 5})
	}

	doc, err := d.Draft(DraftRequest{
		DocumentType:  models.DocumentTypePetition,
		LawSections:   sections,
		CaseHistories: cases,
	})
	require.NoError(t, err)

	assert.Len(t, doc.Metadata.ActsReferenced, 3)
	assert.Equal(t, "Indian Penal Code Section 415", doc.Metadata.ActsReferenced[0])
	assert.Len(t, doc.Metadata.CasesCited, 3)
}

func TestDraftMetadataBriefExcerpt(t *testing.T) {
	d := NewDrafter()

	short, err := d.Draft(DraftRequest{
		DocumentType: models.DocumentTypePetition,
		BriefText:    "A short brief.",
	})
	require.NoError(t, err)
	assert.Equal(t, "A short brief.", short.Metadata.BasedOnBriefExcerpt)

	long, err := d.Draft(DraftRequest{
		DocumentType: models.DocumentTypePetition,
		BriefText:    strings.Repeat("क", 120),
	})
	require.NoError(t, err)

	excerpt := long.Metadata.BasedOnBriefExcerpt
	assert.True(t, utf8.ValidString(excerpt))
	assert.Equal(t, strings.Repeat("क", 100)+"...", excerpt)
}

func TestDraftGroundsTruncateOnRuneBoundary(t *testing.T) {
	d := NewDrafter()

	doc, err := d.Draft(DraftRequest{
		DocumentType: models.DocumentTypePetition,
		LawSections: []models.LawSection{
			{Act: "Indian Penal Code", SectionNumber: "420", Content: strings.Repeat("धारा", 50), Relevance: 5},
		},
	})
	require.NoError(t, err)

	grounds := doc.Sections["grounds"]
	assert.True(t, utf8.ValidString(grounds))
	assert.Contains(t, grounds, strings.Repeat("धारा", 37)+"धा...")
}

func TestDraftPartiesFallBackToPlaceholders(t *testing.T) {
	d := NewDrafter()

	doc, err := d.Draft(DraftRequest{DocumentType: models.DocumentTypePetition})
	require.NoError(t, err)

	assert.Contains(t, doc.Sections["title"], "PETITIONER NAME")
	assert.False(t, strings.Contains(doc.Content, "_PLACEHOLDER"))
}
