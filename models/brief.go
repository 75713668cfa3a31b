package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BriefStatus represents the status of a legal brief
type BriefStatus string

const (
	BriefStatusDraft    BriefStatus = "draft"
	BriefStatusAnalyzed BriefStatus = "analyzed"
	BriefStatusArchived BriefStatus = "archived"
)

// Brief represents a legal brief entity
type Brief struct {
	ID         uuid.UUID         `json:"id"`
	UserID     uuid.UUID         `json:"user_id"`
	Title      string            `json:"title"`
	Content    string            `json:"content"`
	Status     BriefStatus       `json:"status"`
	Snapshot   *AnalysisSnapshot `json:"snapshot,omitempty"`
	SourceFile *uuid.UUID        `json:"source_file_id,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
	AnalyzedAt *time.Time        `json:"analyzed_at,omitempty"`
}

// StoredSections is the JSONB form of a drafted document's sections
type StoredSections DocumentSections

// Value implements driver.Valuer for JSONB
func (s StoredSections) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner for JSONB
func (s *StoredSections) Scan(value interface{}) error {
	if value == nil {
		*s = make(StoredSections)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*s = make(StoredSections)
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// StoredMetadata is the JSONB form of a drafted document's metadata
type StoredMetadata DraftMetadata

// Value implements driver.Valuer for JSONB
func (m StoredMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner for JSONB
func (m *StoredMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = StoredMetadata{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	if len(bytes) == 0 {
		*m = StoredMetadata{}
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// DocumentRecord represents a persisted drafted document
type DocumentRecord struct {
	ID           uuid.UUID      `json:"id"`
	BriefID      uuid.UUID      `json:"brief_id"`
	UserID       uuid.UUID      `json:"user_id"`
	DocumentType DocumentType   `json:"document_type"`
	Content      string         `json:"content"`
	Sections     StoredSections `json:"sections"`
	Metadata     StoredMetadata `json:"metadata"`
	ExportKey    *string        `json:"export_key,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}
