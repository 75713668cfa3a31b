package service

import (
	"errors"
	"fmt"
	"time"

	"lexassist-backend/models"
)

// ErrUnsupportedDocumentType is returned when the requested document type
// is not in the supported catalog. It is the only hard validation error
// in the drafting pipeline.
var ErrUnsupportedDocumentType = errors.New("unsupported document type")

// briefExcerptLength bounds the source-text excerpt kept in metadata
const briefExcerptLength = 100

// DraftRequest carries everything the drafter needs to produce a document
type DraftRequest struct {
	DocumentType  models.DocumentType
	Analysis      models.BriefAnalysis
	LawSections   []models.LawSection
	CaseHistories []models.CaseHistory
	Result        models.AnalysisResult

	// BriefText is the normalized source text; an excerpt of it is
	// recorded in the document metadata
	BriefText string

	// Court names the forum; used in the title when set
	Court string

	// Overrides short-circuit generation per section name
	Overrides map[string]string
}

// Drafter assembles legal documents from analysis and research output
type Drafter struct {
	templates *TemplateStore
	now       func() time.Time
}

// DrafterOption is a functional option for Drafter
type DrafterOption func(*Drafter)

// DrafterWithTemplateStore sets the template store
func DrafterWithTemplateStore(store *TemplateStore) DrafterOption {
	return func(d *Drafter) {
		d.templates = store
	}
}

// DrafterWithClock overrides the time source, used in tests
func DrafterWithClock(now func() time.Time) DrafterOption {
	return func(d *Drafter) {
		d.now = now
	}
}

// NewDrafter creates a document drafter
func NewDrafter(opts ...DrafterOption) *Drafter {
	d := &Drafter{
		templates: NewTemplateStore(""),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Draft produces a complete document for the requested type. Every section
// in the type's schema is generated; missing data degrades to bracketed
// placeholders, never to an error. The only rejection is an unknown
// document type.
func (d *Drafter) Draft(req DraftRequest) (*models.DraftedDocument, error) {
	if !req.DocumentType.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocumentType, req.DocumentType)
	}

	now := d.now()

	sections := generateSections(sectionInput{
		docType:   req.DocumentType,
		analysis:  req.Analysis,
		law:       req.LawSections,
		cases:     req.CaseHistories,
		result:    req.Result,
		overrides: req.Overrides,
		court:     req.Court,
		now:       now,
	})

	content := FillTemplate(d.templates.Load(req.DocumentType), sections, now)

	metadata := models.DraftMetadata{
		DocumentType:        req.DocumentType,
		GeneratedAt:         now,
		BasedOnBriefExcerpt: truncateRunes(req.BriefText, briefExcerptLength),
		Domains:             req.Analysis.DomainNames(),
	}
	for _, s := range limitSections(req.LawSections, 3) {
		metadata.ActsReferenced = append(metadata.ActsReferenced, s.Label())
	}
	for i, c := range req.CaseHistories {
		if i >= 3 {
			break
		}
		metadata.CasesCited = append(metadata.CasesCited, c.Label())
	}

	return &models.DraftedDocument{
		Content:  content,
		Metadata: metadata,
		Sections: sections,
	}, nil
}
