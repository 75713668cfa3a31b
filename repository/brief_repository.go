package repository

import (
	"context"
	"fmt"
	"time"

	"lexassist-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BriefRepository handles database operations for legal briefs
type BriefRepository struct {
	db *pgxpool.Pool
}

// NewBriefRepository creates a new brief repository
func NewBriefRepository(db *pgxpool.Pool) *BriefRepository {
	return &BriefRepository{db: db}
}

// Create creates a new brief
func (r *BriefRepository) Create(ctx context.Context, brief *models.Brief) error {
	query := `
		INSERT INTO briefs (
			user_id, title, content, status, snapshot, source_file_id
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		brief.UserID,
		brief.Title,
		brief.Content,
		brief.Status,
		brief.Snapshot,
		brief.SourceFile,
	).Scan(&brief.ID, &brief.CreatedAt, &brief.UpdatedAt)

	return err
}

// GetByID retrieves a brief by ID
func (r *BriefRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Brief, error) {
	brief := &models.Brief{}
	query := `
		SELECT id, user_id, title, content, status, snapshot, source_file_id,
			created_at, updated_at, analyzed_at
		FROM briefs
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&brief.ID,
		&brief.UserID,
		&brief.Title,
		&brief.Content,
		&brief.Status,
		&brief.Snapshot,
		&brief.SourceFile,
		&brief.CreatedAt,
		&brief.UpdatedAt,
		&brief.AnalyzedAt,
	)

	if err != nil {
		return nil, err
	}

	return brief, nil
}

// UpdateSnapshot stores the analysis snapshot and marks the brief analyzed
func (r *BriefRepository) UpdateSnapshot(ctx context.Context, id uuid.UUID, snapshot *models.AnalysisSnapshot) error {
	now := time.Now()
	query := `
		UPDATE briefs SET
			snapshot = $2,
			status = $3,
			analyzed_at = $4,
			updated_at = $4
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, snapshot, models.BriefStatusAnalyzed, now)
	return err
}

// Update updates a brief's title and content
func (r *BriefRepository) Update(ctx context.Context, brief *models.Brief) error {
	query := `
		UPDATE briefs SET
			title = $2,
			content = $3,
			status = $4,
			source_file_id = $5,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(
		ctx, query,
		brief.ID,
		brief.Title,
		brief.Content,
		brief.Status,
		brief.SourceFile,
	).Scan(&brief.UpdatedAt)

	return err
}

// ListByUserID retrieves all briefs for a user
func (r *BriefRepository) ListByUserID(ctx context.Context, userID uuid.UUID, status *models.BriefStatus, limit, offset int) ([]*models.Brief, error) {
	query := `
		SELECT id, user_id, title, content, status, snapshot, source_file_id,
			created_at, updated_at, analyzed_at
		FROM briefs
		WHERE user_id = $1`

	args := []interface{}{userID}
	argIndex := 2

	if status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIndex)
		args = append(args, *status)
		argIndex++
	}

	query += " ORDER BY created_at DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
		if offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, offset)
		}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var briefs []*models.Brief
	for rows.Next() {
		brief := &models.Brief{}
		err := rows.Scan(
			&brief.ID,
			&brief.UserID,
			&brief.Title,
			&brief.Content,
			&brief.Status,
			&brief.Snapshot,
			&brief.SourceFile,
			&brief.CreatedAt,
			&brief.UpdatedAt,
			&brief.AnalyzedAt,
		)
		if err != nil {
			return nil, err
		}
		briefs = append(briefs, brief)
	}

	return briefs, rows.Err()
}

// Delete deletes a brief
func (r *BriefRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM briefs WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
