package handlers

import (
	"net/http"

	"lexassist-backend/connector"
	"lexassist-backend/models"
	"lexassist-backend/service"

	"github.com/gin-gonic/gin"
)

// ResearchHandler handles HTTP requests for direct legal research
type ResearchHandler struct {
	aggregator *service.ResearchAggregator
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(aggregator *service.ResearchAggregator) *ResearchHandler {
	return &ResearchHandler{aggregator: aggregator}
}

// SearchRequest represents the request body for search endpoints.
// Statutory act+section lookups go through act_sections; acts and
// sections are independent term lists.
type SearchRequest struct {
	Keywords    []string            `json:"keywords"`
	Acts        []string            `json:"acts"`
	Sections    []string            `json:"sections"`
	ActSections []models.ActSection `json:"act_sections"`
	Domains     []string            `json:"domains"`
	Queries     []string            `json:"queries"`
}

func (r SearchRequest) params() connector.SearchParams {
	return connector.SearchParams{
		Keywords:    r.Keywords,
		Acts:        r.Acts,
		Sections:    r.Sections,
		ActSections: r.ActSections,
		Domains:     r.Domains,
		Queries:     r.Queries,
	}
}

func (r SearchRequest) empty() bool {
	return len(r.Keywords) == 0 && len(r.Acts) == 0 && len(r.Sections) == 0 &&
		len(r.ActSections) == 0 && len(r.Domains) == 0 && len(r.Queries) == 0
}

// SearchLawSections handles POST /api/search-law
func (h *ResearchHandler) SearchLawSections(c *gin.Context) {
	var req SearchRequest
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

	if req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_SEARCH",
				"message": "At least one search parameter is required",
			},
		})
		return
	}

	sections := h.aggregator.SearchLawSections(c.Request.Context(), req.params())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sections,
	})
}

// SearchCaseHistory handles POST /api/search-cases
func (h *ResearchHandler) SearchCaseHistory(c *gin.Context) {
	var req SearchRequest
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

	if req.empty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_SEARCH",
				"message": "At least one search parameter is required",
			},
		})
		return
	}

	cases := h.aggregator.SearchCaseHistory(c.Request.Context(), req.params())

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cases,
	})
}
