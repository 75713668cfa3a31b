package handlers

import (
	"errors"
	"net/http"

	"lexassist-backend/models"
	"lexassist-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BriefHandler handles HTTP requests for legal briefs
type BriefHandler struct {
	briefService *service.BriefService
}

// NewBriefHandler creates a new brief handler
func NewBriefHandler(briefService *service.BriefService) *BriefHandler {
	return &BriefHandler{briefService: briefService}
}

// AnalyzeOptions filters which parts of the research payload come back.
// Every part is included unless explicitly switched off.
type AnalyzeOptions struct {
	IncludeLawSections   *bool `json:"include_law_sections"`
	IncludeCaseHistories *bool `json:"include_case_histories"`
	IncludeAnalysis      *bool `json:"include_analysis"`
}

func excluded(flag *bool) bool {
	return flag != nil && !*flag
}

// AnalyzeBriefRequest represents the request body for the stateless
// analysis endpoint
type AnalyzeBriefRequest struct {
	Text         string          `json:"text" binding:"required"`
	SkipResearch bool            `json:"skip_research"`
	Options      *AnalyzeOptions `json:"options"`
}

// AnalyzeBrief handles POST /api/analyze-brief
func (h *BriefHandler) AnalyzeBrief(c *gin.Context) {
	var req AnalyzeBriefRequest
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

	result, err := h.briefService.AnalyzeBrief(c.Request.Context(), service.AnalyzeBriefRequest{
		Text:         req.Text,
		SkipResearch: req.SkipResearch,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ANALYSIS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	snapshot := result.Snapshot
	if req.Options != nil {
		if snapshot.Research != nil {
			if excluded(req.Options.IncludeLawSections) {
				snapshot.Research.LawSections = nil
			}
			if excluded(req.Options.IncludeCaseHistories) {
				snapshot.Research.CaseHistory = nil
			}
		}
		if excluded(req.Options.IncludeAnalysis) {
			snapshot.Result = nil
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    snapshot,
	})
}

// CreateBriefRequest represents the request body for creating a brief
type CreateBriefRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

// CreateBrief handles POST /api/briefs
func (h *BriefHandler) CreateBrief(c *gin.Context) {
	var req CreateBriefRequest
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

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "Invalid user_id format",
			},
		})
		return
	}

	result, err := h.briefService.CreateBrief(c.Request.Context(), service.CreateBriefRequest{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmptyBrief) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "EMPTY_BRIEF",
					"message": "Brief content is empty",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    result.Brief,
	})
}

// GetBrief handles GET /api/briefs/:id
func (h *BriefHandler) GetBrief(c *gin.Context) {
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

	result, err := h.briefService.GetBrief(c.Request.Context(), service.GetBriefRequest{ID: id})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Brief not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Brief,
	})
}

// ListBriefs handles GET /api/briefs
func (h *BriefHandler) ListBriefs(c *gin.Context) {
	userIDStr := c.Query("user_id")
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_USER_ID",
				"message": "Valid user_id query parameter is required",
			},
		})
		return
	}

	var status *models.BriefStatus
	if statusStr := c.Query("status"); statusStr != "" {
		s := models.BriefStatus(statusStr)
		status = &s
	}

	result, err := h.briefService.ListBriefs(c.Request.Context(), service.ListBriefsRequest{
		UserID: userID,
		Status: status,
	})
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
		"data":    result.Briefs,
	})
}

// AnalyzeStoredBrief handles POST /api/briefs/:id/analyze
func (h *BriefHandler) AnalyzeStoredBrief(c *gin.Context) {
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

	result, err := h.briefService.AnalyzeStoredBrief(c.Request.Context(), service.AnalyzeStoredBriefRequest{ID: id})
	if err != nil {
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
				"code":    "ANALYSIS_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Brief,
	})
}

// DeleteBrief handles DELETE /api/briefs/:id
func (h *BriefHandler) DeleteBrief(c *gin.Context) {
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

	err = h.briefService.DeleteBrief(c.Request.Context(), service.DeleteBriefRequest{ID: id})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DELETE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"deleted": true},
	})
}
