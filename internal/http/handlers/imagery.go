package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandcopilot/brand-copilot/internal/http/response"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type ImageryHandler struct {
	log            *logger.Logger
	imageryService services.ImageryService
}

func NewImageryHandler(log *logger.Logger, imageryService services.ImageryService) *ImageryHandler {
	return &ImageryHandler{
		log:            log.With("handler", "ImageryHandler"),
		imageryService: imageryService,
	}
}

type blendConceptsRequest struct {
	ImageURLs []string `json:"image_urls" binding:"required"`
	BlendMode string   `json:"blend_mode"`
	ProjectID string   `json:"project_id"`
	BriefID   string   `json:"brief_id"`
}

func (h *ImageryHandler) BlendConcepts(c *gin.Context) {
	var req blendConceptsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}
	briefID, err := parseOptionalUUID(req.BriefID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}

	result, err := h.imageryService.BlendConcepts(c.Request.Context(), req.ImageURLs, req.BlendMode, projectID, briefID)
	if err != nil {
		h.log.Error("BlendConcepts failed", "error", err)
		response.RespondServiceError(c, "blend_concepts_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":       true,
		"asset_id":      result.AssetID,
		"blended_image": result.DataURI,
		"metadata":      result.Metadata,
	})
}

type applyStyleRequest struct {
	ImageURL  string         `json:"image_url" binding:"required"`
	StyleData map[string]any `json:"style_data"`
	StyleType string         `json:"style_type" binding:"required"`
	ProjectID string         `json:"project_id"`
	BriefID   string         `json:"brief_id"`
}

func (h *ImageryHandler) ApplyStyle(c *gin.Context) {
	var req applyStyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	projectID, err := parseOptionalUUID(req.ProjectID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}
	briefID, err := parseOptionalUUID(req.BriefID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}

	result, err := h.imageryService.ApplyStyle(c.Request.Context(), req.ImageURL, req.StyleType, req.StyleData, projectID, briefID)
	if err != nil {
		h.log.Error("ApplyStyle failed", "error", err, "style_type", req.StyleType)
		response.RespondServiceError(c, "apply_style_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":      true,
		"asset_id":     result.AssetID,
		"styled_image": result.DataURI,
		"metadata":     result.Metadata,
	})
}
