package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/http/response"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type VisualHandler struct {
	log           *logger.Logger
	visualService services.VisualService
}

func NewVisualHandler(log *logger.Logger, visualService services.VisualService) *VisualHandler {
	return &VisualHandler{
		log:           log.With("handler", "VisualHandler"),
		visualService: visualService,
	}
}

type generateConceptsRequest struct {
	BriefID           string            `json:"brief_id" binding:"required"`
	StrategicAnalysis strategy.Analysis `json:"strategic_analysis"`
	Keywords          []string          `json:"keywords"`
	Attributes        []string          `json:"attributes"`
	StylePreferences  map[string]int    `json:"style_preferences"`
	BrandName         string            `json:"brand_name"`
	ProjectID         string            `json:"project_id"`
}

func (h *VisualHandler) GenerateConcepts(c *gin.Context) {
	var req generateConceptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	briefID, err := uuid.Parse(req.BriefID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}
	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}

	brandName := req.BrandName
	if brandName == "" {
		brandName = "Brand"
	}

	result, err := h.visualService.GenerateConcepts(c.Request.Context(), briefID, req.StrategicAnalysis, req.Keywords, req.Attributes, req.StylePreferences, brandName, projectID)
	if err != nil {
		h.log.Error("GenerateConcepts failed", "error", err, "brief_id", briefID)
		response.RespondServiceError(c, "generate_concepts_failed", err)
		return
	}
	response.RespondOK(c, result)
}

type generateGalaxyRequest struct {
	Keywords   []string `json:"keywords"`
	Attributes []string `json:"attributes"`
	BriefID    string   `json:"brief_id"`
	ProjectID  string   `json:"project_id"`
	DemoMode   bool     `json:"demo_mode"`
}

func (h *VisualHandler) GenerateGalaxy(c *gin.Context) {
	var req generateGalaxyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	briefID, err := parseOptionalUUID(req.BriefID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}
	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}

	result, err := h.visualService.GenerateGalaxy(c.Request.Context(), req.Keywords, req.Attributes, briefID, projectID, req.DemoMode)
	if err != nil {
		h.log.Error("GenerateGalaxy failed", "error", err)
		response.RespondServiceError(c, "generate_galaxy_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":           true,
		"galaxy_data":       result,
		"saved_to_database": result.SavedToDatabase,
		"message":           "Galaxy generated",
	})
}
