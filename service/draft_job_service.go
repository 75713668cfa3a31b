package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"lexassist-backend/models"
	"lexassist-backend/repository"

	"github.com/google/uuid"
)

var (
	// ErrJobNotFound is returned when a draft job does not exist
	ErrJobNotFound = errors.New("draft job not found")
	// ErrJobCreationFailed is returned when a draft job could not be created
	ErrJobCreationFailed = errors.New("failed to create draft job")
)

// Step names, in pipeline order
const (
	stepAnalyzing    = "Analyzing Brief"
	stepLawSections  = "Researching Law Sections"
	stepCaseHistory  = "Researching Case History"
	stepSynthesizing = "Synthesizing Analysis"
	stepDrafting     = "Drafting Document"
	stepExporting    = "Exporting Document"
)

// DraftJobService runs the document drafting pipeline as background jobs
type DraftJobService struct {
	briefRepo    *repository.BriefRepository
	jobRepo      *repository.DraftJobRepository
	documentRepo *repository.DocumentRepository
	briefService *BriefService
	drafter      *Drafter
	exporter     *DocumentExporter
}

// DraftJobServiceOption is a functional option for DraftJobService
type DraftJobServiceOption func(*DraftJobService)

// JobWithBriefRepository sets the brief repository
func JobWithBriefRepository(repo *repository.BriefRepository) DraftJobServiceOption {
	return func(s *DraftJobService) {
		s.briefRepo = repo
	}
}

// JobWithDraftJobRepository sets the draft job repository
func JobWithDraftJobRepository(repo *repository.DraftJobRepository) DraftJobServiceOption {
	return func(s *DraftJobService) {
		s.jobRepo = repo
	}
}

// JobWithDocumentRepository sets the document repository
func JobWithDocumentRepository(repo *repository.DocumentRepository) DraftJobServiceOption {
	return func(s *DraftJobService) {
		s.documentRepo = repo
	}
}

// JobWithBriefService sets the brief service used for analysis and research
func JobWithBriefService(svc *BriefService) DraftJobServiceOption {
	return func(s *DraftJobService) {
		s.briefService = svc
	}
}

// JobWithDrafter sets the document drafter
func JobWithDrafter(d *Drafter) DraftJobServiceOption {
	return func(s *DraftJobService) {
		s.drafter = d
	}
}

// JobWithExporter sets the document exporter. When unset the export
// step is skipped and documents stay database-only.
func JobWithExporter(e *DocumentExporter) DraftJobServiceOption {
	return func(s *DraftJobService) {
		s.exporter = e
	}
}

// NewDraftJobService creates a new draft job service
func NewDraftJobService(opts ...DraftJobServiceOption) *DraftJobService {
	s := &DraftJobService{}
	for _, opt := range opts {
		opt(s)
	}
	if s.briefService == nil {
		s.briefService = NewBriefService()
	}
	if s.drafter == nil {
		s.drafter = NewDrafter()
	}
	return s
}

// StartDraftRequest represents a request to start drafting a document
type StartDraftRequest struct {
	BriefID      uuid.UUID
	DocumentType models.DocumentType
}

// StartDraftResult represents the result of starting a draft job
type StartDraftResult struct {
	JobID uuid.UUID
}

// StartDraft validates the request and creates a pending draft job.
// The caller is expected to run ProcessDraftJob in a goroutine.
func (s *DraftJobService) StartDraft(ctx context.Context, req StartDraftRequest) (*StartDraftResult, error) {
	if s.briefRepo == nil {
		return nil, errors.New("brief repository not set")
	}
	if s.jobRepo == nil {
		return nil, errors.New("draft job repository not set")
	}

	if !req.DocumentType.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocumentType, req.DocumentType)
	}

	_, err := s.briefRepo.GetByID(ctx, req.BriefID)
	if err != nil {
		return nil, ErrBriefNotFound
	}

	job := &models.DraftJob{
		BriefID:      req.BriefID,
		DocumentType: req.DocumentType,
		Status:       models.JobStatusPending,
		Steps:        initializeDraftSteps(s.exporter != nil),
	}

	err = s.jobRepo.Create(ctx, job)
	if err != nil {
		return nil, ErrJobCreationFailed
	}

	return &StartDraftResult{JobID: job.ID}, nil
}

// initializeDraftSteps creates the pending step list for a new job
func initializeDraftSteps(withExport bool) models.DraftSteps {
	names := []string{
		stepAnalyzing,
		stepLawSections,
		stepCaseHistory,
		stepSynthesizing,
		stepDrafting,
	}
	if withExport {
		names = append(names, stepExporting)
	}

	steps := make(models.DraftSteps, 0, len(names))
	for _, name := range names {
		steps = append(steps, models.DraftStep{Name: name, Status: "pending"})
	}
	return steps
}

// DraftDocumentRequest represents a request to draft a document
// synchronously from raw brief text
type DraftDocumentRequest struct {
	Text         string
	DocumentType models.DocumentType
	Court        string
	Overrides    map[string]string
}

// DraftDocumentResult represents the result of drafting a document
type DraftDocumentResult struct {
	Document *models.DraftedDocument
	Snapshot *models.AnalysisSnapshot
}

// DraftDocument runs the full pipeline in-process without persistence:
// analyze, research, synthesize, draft. Used by the stateless drafting
// endpoint.
func (s *DraftJobService) DraftDocument(ctx context.Context, req DraftDocumentRequest) (*DraftDocumentResult, error) {
	if !req.DocumentType.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDocumentType, req.DocumentType)
	}

	analyzed, err := s.briefService.AnalyzeBrief(ctx, AnalyzeBriefRequest{Text: req.Text})
	if err != nil {
		return nil, err
	}

	snapshot := analyzed.Snapshot
	drafted, err := s.drafter.Draft(DraftRequest{
		DocumentType:  req.DocumentType,
		Analysis:      snapshot.Analysis,
		LawSections:   snapshot.Research.LawSections,
		CaseHistories: snapshot.Research.CaseHistory,
		Result:        *snapshot.Result,
		BriefText:     NormalizeText(req.Text),
		Court:         req.Court,
		Overrides:     req.Overrides,
	})
	if err != nil {
		return nil, err
	}

	return &DraftDocumentResult{Document: drafted, Snapshot: snapshot}, nil
}

// GetJobStatusRequest represents a request to get a draft job's status
type GetJobStatusRequest struct {
	JobID uuid.UUID
}

// GetJobStatusResult represents the result of getting a draft job's status
type GetJobStatusResult struct {
	Job *models.DraftJob
}

// GetJobStatus retrieves the status of a draft job
func (s *DraftJobService) GetJobStatus(ctx context.Context, req GetJobStatusRequest) (*GetJobStatusResult, error) {
	if s.jobRepo == nil {
		return nil, errors.New("draft job repository not set")
	}

	job, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, ErrJobNotFound
	}

	return &GetJobStatusResult{Job: job}, nil
}

// ProcessDraftJob performs the drafting work in the background.
// This method runs in a goroutine and can take several seconds when
// remote connectors are configured.
func (s *DraftJobService) ProcessDraftJob(ctx context.Context, jobID uuid.UUID) error {
	if s.jobRepo == nil {
		return errors.New("draft job repository not set")
	}
	if s.briefRepo == nil {
		return errors.New("brief repository not set")
	}
	if s.documentRepo == nil {
		return errors.New("document repository not set")
	}

	// 1. Load job and brief
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load draft job: %w", err)
	}

	brief, err := s.briefRepo.GetByID(ctx, job.BriefID)
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to load brief: "+err.Error())
		return err
	}

	err = s.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusInProgress)
	if err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	// 2. Analyze the brief's text
	err = s.updateStepStatus(ctx, jobID, stepAnalyzing, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	analysis, err := s.briefService.AnalyzeText(ctx, brief.Content)
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to analyze brief: "+err.Error())
		return err
	}

	err = s.updateStepStatus(ctx, jobID, stepAnalyzing, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 3. Research law sections and case history. Connector failures are
	// absorbed by the aggregator, so these steps cannot fail the job.
	params := searchParamsFromAnalysis(analysis)

	err = s.updateStepStatus(ctx, jobID, stepLawSections, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}
	lawSections := s.briefService.aggregator.SearchLawSections(ctx, params)
	err = s.updateStepStatus(ctx, jobID, stepLawSections, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	err = s.updateStepStatus(ctx, jobID, stepCaseHistory, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}
	caseHistory := s.briefService.aggregator.SearchCaseHistory(ctx, params)
	err = s.updateStepStatus(ctx, jobID, stepCaseHistory, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 4. Synthesize the analysis
	err = s.updateStepStatus(ctx, jobID, stepSynthesizing, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}
	result := SynthesizeAnalysis(*analysis, lawSections, caseHistory)
	err = s.updateStepStatus(ctx, jobID, stepSynthesizing, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 5. Draft the document
	err = s.updateStepStatus(ctx, jobID, stepDrafting, "in_progress")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	drafted, err := s.drafter.Draft(DraftRequest{
		DocumentType:  job.DocumentType,
		Analysis:      *analysis,
		LawSections:   lawSections,
		CaseHistories: caseHistory,
		Result:        result,
		BriefText:     NormalizeText(brief.Content),
	})
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to draft document: "+err.Error())
		return err
	}

	doc := &models.DocumentRecord{
		BriefID:      brief.ID,
		UserID:       brief.UserID,
		DocumentType: job.DocumentType,
		Content:      drafted.Content,
		Sections:     models.StoredSections(drafted.Sections),
		Metadata:     models.StoredMetadata(drafted.Metadata),
	}

	err = s.documentRepo.Create(ctx, doc)
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to store document: "+err.Error())
		return err
	}

	err = s.updateStepStatus(ctx, jobID, stepDrafting, "completed")
	if err != nil {
		s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
		return err
	}

	// 6. Export to storage when configured
	if s.exporter != nil {
		err = s.updateStepStatus(ctx, jobID, stepExporting, "in_progress")
		if err != nil {
			s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
			return err
		}

		key, err := s.exporter.Export(ctx, doc)
		if err != nil {
			// Document is already stored; export failure should not
			// lose the draft
			log.Printf("Warning: failed to export document %s: %v", doc.ID, err)
		} else {
			err = s.documentRepo.UpdateExportKey(ctx, doc.ID, key)
			if err != nil {
				log.Printf("Warning: failed to record export key for %s: %v", doc.ID, err)
			}
		}

		err = s.updateStepStatus(ctx, jobID, stepExporting, "completed")
		if err != nil {
			s.markJobFailed(ctx, jobID, "failed to update step: "+err.Error())
			return err
		}
	}

	// 7. Mark job as completed
	current, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to reload draft job: %w", err)
	}

	err = s.jobRepo.Complete(ctx, jobID, doc.ID, current.Steps)
	if err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	return nil
}

// updateStepStatus updates the status of a specific step in the draft job
func (s *DraftJobService) updateStepStatus(ctx context.Context, jobID uuid.UUID, stepName, status string) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	steps := job.Steps
	var currentStep string
	if job.CurrentStep != nil {
		currentStep = *job.CurrentStep
	}

	for i := range steps {
		if steps[i].Name == stepName {
			steps[i].Status = status
			if status == "in_progress" {
				currentStep = stepName
			}
			break
		}
	}

	return s.jobRepo.UpdateProgress(ctx, jobID, currentStep, steps)
}

// markJobFailed marks a job as failed with an error message
func (s *DraftJobService) markJobFailed(ctx context.Context, jobID uuid.UUID, errorMessage string) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	var steps models.DraftSteps
	if err == nil {
		steps = job.Steps
	}

	err = s.jobRepo.Fail(ctx, jobID, errorMessage, steps)
	if err != nil {
		log.Printf("Warning: failed to mark job %s as failed: %v", jobID, err)
	}
}
