package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lexassist-backend/models"
	"lexassist-backend/storage"

	"github.com/google/uuid"
)

// ErrNoStorage is returned when export is requested without a storage backend
var ErrNoStorage = errors.New("storage backend not set")

// DocumentExporter renders drafted documents to plain text files and
// stores them through the configured storage backend
type DocumentExporter struct {
	store storage.Storage
}

// NewDocumentExporter creates a new document exporter
func NewDocumentExporter(store storage.Storage) *DocumentExporter {
	return &DocumentExporter{store: store}
}

// Export writes the document's text rendering to storage and returns
// the storage path
func (e *DocumentExporter) Export(ctx context.Context, doc *models.DocumentRecord) (string, error) {
	if e.store == nil {
		return "", ErrNoStorage
	}

	filename := exportFilename(doc)
	rendered := RenderText(doc)

	return e.store.Upload(ctx, doc.ID, filename, strings.NewReader(rendered))
}

func exportFilename(doc *models.DocumentRecord) string {
	id := doc.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return fmt.Sprintf("%s_%s.txt", doc.DocumentType, id.String()[:8])
}

// RenderText produces the plain text export of a drafted document:
// the filled template followed by a generation footer
func RenderText(doc *models.DocumentRecord) string {
	var b strings.Builder
	b.WriteString(doc.Content)
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Document type: %s\n", doc.DocumentType))
	if !doc.Metadata.GeneratedAt.IsZero() {
		b.WriteString(fmt.Sprintf("Generated at: %s\n", doc.Metadata.GeneratedAt.Format("02/01/2006 15:04")))
	}
	if len(doc.Metadata.ActsReferenced) > 0 {
		b.WriteString(fmt.Sprintf("Acts referenced: %s\n", strings.Join(doc.Metadata.ActsReferenced, "; ")))
	}
	if len(doc.Metadata.CasesCited) > 0 {
		b.WriteString(fmt.Sprintf("Cases cited: %s\n", strings.Join(doc.Metadata.CasesCited, "; ")))
	}
	return b.String()
}
