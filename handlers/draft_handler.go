package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"lexassist-backend/models"
	"lexassist-backend/repository"
	"lexassist-backend/service"
	"lexassist-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DraftHandler handles HTTP requests for document drafting
type DraftHandler struct {
	jobService   *service.DraftJobService
	documentRepo *repository.DocumentRepository
	store        storage.Storage
	exporter     *service.DocumentExporter
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(jobService *service.DraftJobService, documentRepo *repository.DocumentRepository, store storage.Storage, exporter *service.DocumentExporter) *DraftHandler {
	return &DraftHandler{
		jobService:   jobService,
		documentRepo: documentRepo,
		store:        store,
		exporter:     exporter,
	}
}

// DraftDocumentRequest represents the request body for the stateless
// drafting endpoint
type DraftDocumentRequest struct {
	Text         string            `json:"text" binding:"required"`
	DocumentType string            `json:"document_type" binding:"required"`
	Court        string            `json:"court"`
	Overrides    map[string]string `json:"overrides"`
}

// DraftDocument handles POST /api/draft-document
func (h *DraftHandler) DraftDocument(c *gin.Context) {
	var req DraftDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	if service.NormalizeText(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_BRIEF",
				"message": "Brief text is empty",
			},
		})
		return
	}

	result, err := h.jobService.DraftDocument(c.Request.Context(), service.DraftDocumentRequest{
		Text:         req.Text,
		DocumentType: models.DocumentType(req.DocumentType),
		Court:        req.Court,
		Overrides:    req.Overrides,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedDocumentType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNSUPPORTED_DOCUMENT_TYPE",
					"message": fmt.Sprintf("Unsupported document type: %s. Supported types: %s", req.DocumentType, strings.Join(documentTypeNames(), ", ")),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DRAFT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"document": result.Document,
			"analysis": result.Snapshot,
		},
	})
}

func documentTypeNames() []string {
	types := models.DocumentTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return names
}

// StartDraft handles POST /api/briefs/:id/draft
func (h *DraftHandler) StartDraft(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid brief ID format",
			},
		})
		return
	}

	var reqBody struct {
		DocumentType string `json:"document_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&reqBody); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.jobService.StartDraft(c.Request.Context(), service.StartDraftRequest{
		BriefID:      id,
		DocumentType: models.DocumentType(reqBody.DocumentType),
	})
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedDocumentType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "UNSUPPORTED_DOCUMENT_TYPE",
					"message": err.Error(),
				},
			})
			return
		}
		if errors.Is(err, service.ErrBriefNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Brief not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "JOB_CREATION_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	// Spawn background goroutine for actual processing
	// Use background context (not request context) to avoid cancellation
	go func() {
		bgCtx := context.Background()
		if err := h.jobService.ProcessDraftJob(bgCtx, result.JobID); err != nil {
			log.Printf("Draft job %s failed: %v", result.JobID, err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data": gin.H{
			"job_id":  result.JobID,
			"status":  "pending",
			"message": "Draft job created. Poll /api/jobs/:id for updates.",
		},
	})
}

// GetJobStatus handles GET /api/jobs/:id
func (h *DraftHandler) GetJobStatus(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid job ID format",
			},
		})
		return
	}

	result, err := h.jobService.GetJobStatus(c.Request.Context(), service.GetJobStatusRequest{JobID: id})
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Draft job not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "RETRIEVAL_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Job,
	})
}

// GetDocument handles GET /api/documents/:id
func (h *DraftHandler) GetDocument(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	doc, err := h.documentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    doc,
	})
}

// ListDocuments handles GET /api/briefs/:id/documents
func (h *DraftHandler) ListDocuments(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid brief ID format",
			},
		})
		return
	}

	docs, err := h.documentRepo.ListByBriefID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "LIST_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    docs,
	})
}

// CreateExport handles POST /api/documents/:id/export
// Renders the document to text, stores it through the storage backend and
// records the storage key on the document row.
func (h *DraftHandler) CreateExport(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	doc, err := h.documentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	if h.exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_UNAVAILABLE",
				"message": "No storage backend configured for exports",
			},
		})
		return
	}

	key, err := h.exporter.Export(c.Request.Context(), doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EXPORT_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	if err := h.documentRepo.UpdateExportKey(c.Request.Context(), doc.ID, key); err != nil {
		log.Printf("Warning: export stored but key not recorded for document %s: %v", doc.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"export_key": key,
		},
	})
}

// ExportDocument handles GET /api/documents/:id/export
// Streams the exported text file from storage; documents that were never
// exported are rendered on the fly.
func (h *DraftHandler) ExportDocument(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_ID",
				"message": "Invalid document ID format",
			},
		})
		return
	}

	doc, err := h.documentRepo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Document not found",
			},
		})
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", doc.DocumentType, doc.ID.String()[:8])

	if doc.ExportKey != nil && h.store != nil {
		reader, err := h.store.Download(c.Request.Context(), *doc.ExportKey)
		if err == nil {
			defer reader.Close()
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
			c.DataFromReader(http.StatusOK, -1, "text/plain; charset=utf-8", reader, nil)
			return
		}
		log.Printf("Warning: failed to download export %s: %v", *doc.ExportKey, err)
	}

	rendered := service.RenderText(doc)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(rendered))
}
