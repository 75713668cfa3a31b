package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lexassist-backend/connector"
	"lexassist-backend/models"
	"lexassist-backend/nlp"
	"lexassist-backend/repository"

	"github.com/google/uuid"
)

var (
	// ErrBriefNotFound is returned when a brief does not exist
	ErrBriefNotFound = errors.New("brief not found")
	// ErrEmptyBrief is returned when a brief is stored with no content
	ErrEmptyBrief = errors.New("brief text is empty")
)

// summaryMaxSentences is the threshold below which a brief is its own summary
const summaryMaxSentences = 3

// BriefService handles business logic for legal briefs: analysis,
// research and persistence
type BriefService struct {
	briefRepo  *repository.BriefRepository
	engine     nlp.Engine
	aggregator *ResearchAggregator
}

// BriefServiceOption is a functional option for BriefService
type BriefServiceOption func(*BriefService)

// WithBriefRepository sets the brief repository
func WithBriefRepository(repo *repository.BriefRepository) BriefServiceOption {
	return func(s *BriefService) {
		s.briefRepo = repo
	}
}

// WithEntityEngine sets the entity extraction engine
func WithEntityEngine(engine nlp.Engine) BriefServiceOption {
	return func(s *BriefService) {
		s.engine = engine
	}
}

// WithResearchAggregator sets the research aggregator
func WithResearchAggregator(agg *ResearchAggregator) BriefServiceOption {
	return func(s *BriefService) {
		s.aggregator = agg
	}
}

// NewBriefService creates a new brief service
func NewBriefService(opts ...BriefServiceOption) *BriefService {
	s := &BriefService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.engine == nil {
		s.engine = nlp.NewRuleEngine()
	}
	if s.aggregator == nil {
		s.aggregator = NewResearchAggregator()
	}
	return s
}

// AnalyzeText runs the full extraction pipeline over a brief's text and
// returns the structured analysis. It never fails on extraction errors:
// entity extraction falls back to an empty set with a warning, and empty
// text degrades to an empty analysis under the general domain. Request
// validation belongs to the HTTP layer.
func (s *BriefService) AnalyzeText(ctx context.Context, text string) (*models.BriefAnalysis, error) {
	clean := NormalizeText(text)

	entities, err := s.engine.ExtractEntities(ctx, clean)
	if err != nil {
		log.Printf("Warning: entity extraction failed: %v", err)
		entities = nil
	}

	actSections := ExtractActSections(clean)
	acts := ExtractActs(clean)
	citations := ExtractCitations(clean)
	keywords := ExtractKeywords(clean)
	domains := ClassifyDomains(clean, acts)
	parties := ExtractParties(clean)

	analysis := &models.BriefAnalysis{
		Summary:     summarize(clean),
		Entities:    entities,
		EntityMap:   models.BuildEntityMap(entities),
		Parties:     parties,
		Acts:        acts,
		ActSections: actSections,
		Citations:   citations,
		Keywords:    keywords,
		Domains:     domains,
	}
	analysis.Queries = GenerateQueries(clean, entities, actSections, citations, domains)

	return analysis, nil
}

// summarize builds an extractive summary: briefs of three sentences or
// fewer are returned whole, otherwise the first two sentences plus the
// last one.
func summarize(text string) string {
	sentences := nlp.SplitSentences(text)
	if len(sentences) <= summaryMaxSentences {
		return text
	}
	parts := append([]string{}, sentences[:2]...)
	parts = append(parts, sentences[len(sentences)-1])
	return strings.Join(parts, " ")
}

// Research fans the analysis out to all configured connectors and returns
// deduplicated, relevance-ranked results
func (s *BriefService) Research(ctx context.Context, analysis *models.BriefAnalysis) *models.ResearchResults {
	params := searchParamsFromAnalysis(analysis)
	return &models.ResearchResults{
		LawSections: s.aggregator.SearchLawSections(ctx, params),
		CaseHistory: s.aggregator.SearchCaseHistory(ctx, params),
	}
}

func searchParamsFromAnalysis(analysis *models.BriefAnalysis) connector.SearchParams {
	params := connector.SearchParams{
		Keywords:    analysis.Keywords,
		Domains:     analysis.DomainNames(),
		Queries:     analysis.Queries,
		ActSections: analysis.ActSections,
	}
	for _, as := range analysis.ActSections {
		params.Acts = append(params.Acts, as.Act)
		params.Sections = append(params.Sections, as.Section)
	}
	for _, act := range analysis.Acts {
		if !containsString(params.Acts, act) {
			params.Acts = append(params.Acts, act)
		}
	}
	return params
}

// AnalyzeBriefRequest represents a request to analyze raw brief text
type AnalyzeBriefRequest struct {
	Text string

	// SkipResearch stops after extraction; Research and Result stay nil
	SkipResearch bool
}

// AnalyzeBriefResult represents the result of analyzing brief text
type AnalyzeBriefResult struct {
	Snapshot *models.AnalysisSnapshot
}

// AnalyzeBrief runs the complete pipeline over raw text: extraction,
// research across connectors and analysis synthesis
func (s *BriefService) AnalyzeBrief(ctx context.Context, req AnalyzeBriefRequest) (*AnalyzeBriefResult, error) {
	analysis, err := s.AnalyzeText(ctx, req.Text)
	if err != nil {
		return nil, err
	}

	snapshot := &models.AnalysisSnapshot{Analysis: *analysis}
	if !req.SkipResearch {
		research := s.Research(ctx, analysis)
		result := SynthesizeAnalysis(*analysis, research.LawSections, research.CaseHistory)
		snapshot.Research = research
		snapshot.Result = &result
	}

	return &AnalyzeBriefResult{Snapshot: snapshot}, nil
}

// CreateBriefRequest represents a request to create a brief
type CreateBriefRequest struct {
	UserID  uuid.UUID
	Title   string
	Content string
}

// CreateBriefResult represents the result of creating a brief
type CreateBriefResult struct {
	Brief *models.Brief
}

// CreateBrief stores a new brief in draft status
func (s *BriefService) CreateBrief(ctx context.Context, req CreateBriefRequest) (*CreateBriefResult, error) {
	if s.briefRepo == nil {
		return nil, errors.New("brief repository not set")
	}

	content := NormalizeText(req.Content)
	if content == "" {
		return nil, ErrEmptyBrief
	}

	brief := &models.Brief{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: content,
		Status:  models.BriefStatusDraft,
	}
	if brief.Title == "" {
		brief.Title = defaultTitle(content)
	}

	err := s.briefRepo.Create(ctx, brief)
	if err != nil {
		return nil, err
	}

	return &CreateBriefResult{Brief: brief}, nil
}

// defaultTitle derives a title from the first sentence of the brief
func defaultTitle(content string) string {
	sentences := nlp.SplitSentences(content)
	if len(sentences) == 0 {
		return "Untitled Brief"
	}
	title := sentences[0]
	if len(title) > 80 {
		title = strings.TrimSpace(title[:80])
	}
	return title
}

// GetBriefRequest represents a request to get a brief
type GetBriefRequest struct {
	ID uuid.UUID
}

// GetBriefResult represents the result of getting a brief
type GetBriefResult struct {
	Brief *models.Brief
}

// GetBrief retrieves a brief by ID
func (s *BriefService) GetBrief(ctx context.Context, req GetBriefRequest) (*GetBriefResult, error) {
	if s.briefRepo == nil {
		return nil, errors.New("brief repository not set")
	}

	brief, err := s.briefRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, ErrBriefNotFound
	}

	return &GetBriefResult{Brief: brief}, nil
}

// ListBriefsRequest represents a request to list briefs
type ListBriefsRequest struct {
	UserID uuid.UUID
	Status *models.BriefStatus
	Limit  int
	Offset int
}

// ListBriefsResult represents the result of listing briefs
type ListBriefsResult struct {
	Briefs []*models.Brief
}

// ListBriefs lists briefs for a user
func (s *BriefService) ListBriefs(ctx context.Context, req ListBriefsRequest) (*ListBriefsResult, error) {
	if s.briefRepo == nil {
		return nil, errors.New("brief repository not set")
	}

	briefs, err := s.briefRepo.ListByUserID(ctx, req.UserID, req.Status, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	return &ListBriefsResult{Briefs: briefs}, nil
}

// AnalyzeStoredBriefRequest represents a request to analyze a stored brief
type AnalyzeStoredBriefRequest struct {
	ID uuid.UUID
}

// AnalyzeStoredBriefResult represents the result of analyzing a stored brief
type AnalyzeStoredBriefResult struct {
	Brief *models.Brief
}

// AnalyzeStoredBrief runs the full pipeline over a stored brief and
// persists the snapshot, moving the brief to analyzed status
func (s *BriefService) AnalyzeStoredBrief(ctx context.Context, req AnalyzeStoredBriefRequest) (*AnalyzeStoredBriefResult, error) {
	if s.briefRepo == nil {
		return nil, errors.New("brief repository not set")
	}

	brief, err := s.briefRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, ErrBriefNotFound
	}

	result, err := s.AnalyzeBrief(ctx, AnalyzeBriefRequest{Text: brief.Content})
	if err != nil {
		return nil, err
	}

	err = s.briefRepo.UpdateSnapshot(ctx, brief.ID, result.Snapshot)
	if err != nil {
		return nil, err
	}

	brief.Snapshot = result.Snapshot
	brief.Status = models.BriefStatusAnalyzed
	now := time.Now()
	brief.AnalyzedAt = &now

	return &AnalyzeStoredBriefResult{Brief: brief}, nil
}

// DeleteBriefRequest represents a request to delete a brief
type DeleteBriefRequest struct {
	ID uuid.UUID
}

// DeleteBrief deletes a brief
func (s *BriefService) DeleteBrief(ctx context.Context, req DeleteBriefRequest) error {
	if s.briefRepo == nil {
		return errors.New("brief repository not set")
	}
	return s.briefRepo.Delete(ctx, req.ID)
}
