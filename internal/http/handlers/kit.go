package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/http/response"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/visual"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type KitHandler struct {
	log        *logger.Logger
	kitService services.KitService
}

func NewKitHandler(log *logger.Logger, kitService services.KitService) *KitHandler {
	return &KitHandler{
		log:        log.With("handler", "KitHandler"),
		kitService: kitService,
	}
}

type generateKitRequest struct {
	BriefID           string            `json:"brief_id" binding:"required"`
	ProjectID         string            `json:"project_id"`
	BrandName         string            `json:"brand_name" binding:"required"`
	SelectedConcept   visual.Concept    `json:"selected_concept"`
	StrategicAnalysis strategy.Analysis `json:"strategic_analysis"`
	KitPreferences    map[string]any    `json:"kit_preferences"`
}

func (h *KitHandler) GenerateBrandKit(c *gin.Context) {
	var req generateKitRequest
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

	result, err := h.kitService.GenerateBrandKit(c.Request.Context(), req.BrandName, req.SelectedConcept, req.StrategicAnalysis, briefID, projectID)
	if err != nil {
		h.log.Error("GenerateBrandKit failed", "error", err, "brief_id", briefID)
		response.RespondServiceError(c, "generate_brand_kit_failed", err)
		return
	}
	response.RespondOK(c, result)
}

type finalizeKitRequest struct {
	ProjectID         string            `json:"project_id" binding:"required"`
	BriefID           string            `json:"brief_id" binding:"required"`
	CuratedAssets     []string          `json:"curated_assets"`
	BrandName         string            `json:"brand_name" binding:"required"`
	SelectedConcept   visual.Concept    `json:"selected_concept"`
	StrategicAnalysis strategy.Analysis `json:"strategic_analysis"`
	KitPreferences    map[string]any    `json:"kit_preferences"`
}

func (h *KitHandler) FinalizeBrandKit(c *gin.Context) {
	var req finalizeKitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}
	briefID, err := uuid.Parse(req.BriefID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_brief_id", err)
		return
	}
	curated := make([]uuid.UUID, 0, len(req.CuratedAssets))
	for _, raw := range req.CuratedAssets {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.RespondError(c, http.StatusBadRequest, "invalid_curated_asset_id", err)
			return
		}
		curated = append(curated, id)
	}

	result, err := h.kitService.FinalizeBrandKit(c.Request.Context(), req.BrandName, req.SelectedConcept, req.StrategicAnalysis, curated, briefID, projectID)
	if err != nil {
		h.log.Error("FinalizeBrandKit failed", "error", err, "project_id", projectID)
		response.RespondServiceError(c, "finalize_brand_kit_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"success":        true,
		"kit_id":         result.AssetID,
		"brand_kit":      result.BrandKit,
		"download_ready": result.DownloadReady,
		"message":        "Brand kit finalized",
	})
}

func (h *KitHandler) GetBrandKit(c *gin.Context) {
	kitID, err := uuid.Parse(c.Param("kit_id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_kit_id", err)
		return
	}

	asset, err := h.kitService.GetBrandKit(c.Request.Context(), kitID)
	if err != nil {
		h.log.Error("GetBrandKit failed", "error", err, "kit_id", kitID)
		response.RespondServiceError(c, "get_brand_kit_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"brand_kit": json.RawMessage(asset.AssetData)})
}
