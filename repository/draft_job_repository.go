package repository

import (
	"context"
	"time"

	"lexassist-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DraftJobRepository handles database operations for draft jobs
type DraftJobRepository struct {
	db *pgxpool.Pool
}

// NewDraftJobRepository creates a new draft job repository
func NewDraftJobRepository(db *pgxpool.Pool) *DraftJobRepository {
	return &DraftJobRepository{db: db}
}

// Create creates a new draft job
func (r *DraftJobRepository) Create(ctx context.Context, job *models.DraftJob) error {
	query := `
		INSERT INTO draft_jobs (
			brief_id, document_type, status, current_step, steps
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		job.BriefID,
		job.DocumentType,
		job.Status,
		job.CurrentStep,
		job.Steps,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)

	return err
}

// GetByID retrieves a draft job by ID
func (r *DraftJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DraftJob, error) {
	job := &models.DraftJob{}
	query := `
		SELECT id, brief_id, document_type, status, current_step, steps,
			document_id, error_message, created_at, updated_at, completed_at
		FROM draft_jobs
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID,
		&job.BriefID,
		&job.DocumentType,
		&job.Status,
		&job.CurrentStep,
		&job.Steps,
		&job.DocumentID,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.CompletedAt,
	)

	if err != nil {
		return nil, err
	}

	if job.Steps == nil {
		job.Steps = models.DraftSteps{}
	}

	return job, nil
}

// GetByBriefID retrieves the most recent draft job for a brief
func (r *DraftJobRepository) GetByBriefID(ctx context.Context, briefID uuid.UUID) (*models.DraftJob, error) {
	job := &models.DraftJob{}
	query := `
		SELECT id, brief_id, document_type, status, current_step, steps,
			document_id, error_message, created_at, updated_at, completed_at
		FROM draft_jobs
		WHERE brief_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	err := r.db.QueryRow(ctx, query, briefID).Scan(
		&job.ID,
		&job.BriefID,
		&job.DocumentType,
		&job.Status,
		&job.CurrentStep,
		&job.Steps,
		&job.DocumentID,
		&job.ErrorMessage,
		&job.CreatedAt,
		&job.UpdatedAt,
		&job.CompletedAt,
	)

	if err != nil {
		return nil, err
	}

	if job.Steps == nil {
		job.Steps = models.DraftSteps{}
	}

	return job, nil
}

// UpdateStatus updates the status of a draft job
func (r *DraftJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.DraftJobStatus) error {
	query := `
		UPDATE draft_jobs SET
			status = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, status)
	return err
}

// UpdateProgress updates the current step and step list of a draft job
func (r *DraftJobRepository) UpdateProgress(ctx context.Context, id uuid.UUID, currentStep string, steps models.DraftSteps) error {
	query := `
		UPDATE draft_jobs SET
			current_step = $2,
			steps = $3,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, currentStep, steps)
	return err
}

// Complete marks a draft job as completed and links the drafted document
func (r *DraftJobRepository) Complete(ctx context.Context, id uuid.UUID, documentID uuid.UUID, steps models.DraftSteps) error {
	query := `
		UPDATE draft_jobs SET
			status = $2,
			document_id = $3,
			steps = $4,
			completed_at = $5,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.JobStatusCompleted, documentID, steps, time.Now())
	return err
}

// Fail marks a draft job as failed with an error message
func (r *DraftJobRepository) Fail(ctx context.Context, id uuid.UUID, message string, steps models.DraftSteps) error {
	query := `
		UPDATE draft_jobs SET
			status = $2,
			error_message = $3,
			steps = $4,
			completed_at = $5,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, models.JobStatusFailed, message, steps, time.Now())
	return err
}
