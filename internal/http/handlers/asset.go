package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/http/response"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type AssetHandler struct {
	log          *logger.Logger
	assetService services.AssetService
}

func NewAssetHandler(log *logger.Logger, assetService services.AssetService) *AssetHandler {
	return &AssetHandler{
		log:          log.With("handler", "AssetHandler"),
		assetService: assetService,
	}
}

func (h *AssetHandler) ListAssets(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_project_id", err)
		return
	}

	assets, err := h.assetService.ListAssets(c.Request.Context(), projectID, c.Query("asset_type"))
	if err != nil {
		h.log.Error("ListAssets failed", "error", err, "project_id", projectID)
		response.RespondServiceError(c, "list_assets_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"assets": assets})
}
