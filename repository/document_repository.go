package repository

import (
	"context"

	"lexassist-backend/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DocumentRepository handles database operations for drafted documents
type DocumentRepository struct {
	db *pgxpool.Pool
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{db: db}
}

// Create creates a new document record
func (r *DocumentRepository) Create(ctx context.Context, doc *models.DocumentRecord) error {
	query := `
		INSERT INTO documents (
			brief_id, user_id, document_type, content, sections, metadata, export_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx, query,
		doc.BriefID,
		doc.UserID,
		doc.DocumentType,
		doc.Content,
		doc.Sections,
		doc.Metadata,
		doc.ExportKey,
	).Scan(&doc.ID, &doc.CreatedAt, &doc.UpdatedAt)

	return err
}

// GetByID retrieves a document by ID
func (r *DocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.DocumentRecord, error) {
	doc := &models.DocumentRecord{}
	query := `
		SELECT id, brief_id, user_id, document_type, content, sections, metadata,
			export_key, created_at, updated_at
		FROM documents
		WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.BriefID,
		&doc.UserID,
		&doc.DocumentType,
		&doc.Content,
		&doc.Sections,
		&doc.Metadata,
		&doc.ExportKey,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}

	if doc.Sections == nil {
		doc.Sections = make(models.StoredSections)
	}

	return doc, nil
}

// ListByBriefID retrieves all documents drafted from a brief
func (r *DocumentRepository) ListByBriefID(ctx context.Context, briefID uuid.UUID) ([]*models.DocumentRecord, error) {
	query := `
		SELECT id, brief_id, user_id, document_type, content, sections, metadata,
			export_key, created_at, updated_at
		FROM documents
		WHERE brief_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, briefID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*models.DocumentRecord
	for rows.Next() {
		doc := &models.DocumentRecord{}
		err := rows.Scan(
			&doc.ID,
			&doc.BriefID,
			&doc.UserID,
			&doc.DocumentType,
			&doc.Content,
			&doc.Sections,
			&doc.Metadata,
			&doc.ExportKey,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// UpdateExportKey records the storage key of the exported file
func (r *DocumentRepository) UpdateExportKey(ctx context.Context, id uuid.UUID, key string) error {
	query := `
		UPDATE documents SET
			export_key = $2,
			updated_at = NOW()
		WHERE id = $1`

	_, err := r.db.Exec(ctx, query, id, key)
	return err
}

// Delete deletes a document
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM documents WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
