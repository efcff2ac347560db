package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/http/response"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type StrategicHandler struct {
	log              *logger.Logger
	strategicService services.StrategicService
}

func NewStrategicHandler(log *logger.Logger, strategicService services.StrategicService) *StrategicHandler {
	return &StrategicHandler{
		log:              log.With("handler", "StrategicHandler"),
		strategicService: strategicService,
	}
}

type strategicAnalysisRequest struct {
	BriefID    string   `json:"brief_id" binding:"required"`
	Text       string   `json:"text" binding:"required"`
	Keywords   []string `json:"keywords"`
	Attributes []string `json:"attributes"`
	ProjectID  string   `json:"project_id"`
}

func (h *StrategicHandler) Analyze(c *gin.Context) {
	var req strategicAnalysisRequest
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

	result, err := h.strategicService.Analyze(c.Request.Context(), briefID, req.Text, req.Keywords, req.Attributes, projectID)
	if err != nil {
		h.log.Error("StrategicAnalysis failed", "error", err, "brief_id", briefID)
		response.RespondServiceError(c, "strategic_analysis_failed", err)
		return
	}
	response.RespondOK(c, result)
}
