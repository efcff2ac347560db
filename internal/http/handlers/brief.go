package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/http/response"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type BriefHandler struct {
	log             *logger.Logger
	briefingService services.BriefingService
}

func NewBriefHandler(log *logger.Logger, briefingService services.BriefingService) *BriefHandler {
	return &BriefHandler{
		log:             log.With("handler", "BriefHandler"),
		briefingService: briefingService,
	}
}

type analyzeBriefRequest struct {
	Text      string `json:"text" binding:"required"`
	ProjectID string `json:"project_id"`
}

func (h *BriefHandler) AnalyzeBrief(c *gin.Context) {
	var req analyzeBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}

	result, err := h.briefingService.AnalyzeBrief(c.Request.Context(), req.Text, projectID)
	if err != nil {
		h.log.Error("AnalyzeBrief failed", "error", err)
		response.RespondServiceError(c, "analyze_brief_failed", err)
		return
	}
	response.RespondOK(c, result)
}

type updateBriefRequest struct {
	BriefID    string   `json:"brief_id" binding:"required"`
	Keywords   []string `json:"keywords"`
	Attributes []string `json:"attributes"`
}

func (h *BriefHandler) UpdateBrief(c *gin.Context) {
	var req updateBriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	briefID, err := uuid.Parse(req.BriefID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}

	if err := h.briefingService.UpdateBrief(c.Request.Context(), briefID, req.Keywords, req.Attributes); err != nil {
		h.log.Error("UpdateBrief failed", "error", err, "brief_id", briefID)
		response.RespondServiceError(c, "update_brief_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"message": "Brief updated"})
}

func (h *BriefHandler) ListBriefs(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}

	briefs, err := h.briefingService.ListBriefs(c.Request.Context(), projectID)
	if err != nil {
		h.log.Error("ListBriefs failed", "error", err, "project_id", projectID)
		response.RespondServiceError(c, "list_briefs_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"briefs": briefs})
}

func (h *BriefHandler) ParseDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "missing_file", err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "unreadable_file", err)
		return
	}

	result, err := h.briefingService.ParseDocument(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		data,
	)
	if err != nil {
		h.log.Error("ParseDocument failed", "error", err, "filename", fileHeader.Filename)
		response.RespondServiceError(c, "parse_document_failed", err)
		return
	}
	response.RespondOK(c, result)
}
