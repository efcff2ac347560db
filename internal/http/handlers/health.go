package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/brandcopilot/brand-copilot/internal/db"
	"github.com/brandcopilot/brand-copilot/internal/http/response"
)

type HealthHandler struct {
	dbService *db.Service
	aiEnabled bool
}

func NewHealthHandler(dbService *db.Service, aiEnabled bool) *HealthHandler {
	return &HealthHandler{dbService: dbService, aiEnabled: aiEnabled}
}

func (h *HealthHandler) Root(c *gin.Context) {
	response.RespondOK(c, gin.H{"status": "Brand Co-Pilot API is running!"})
}

func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "disabled"
	if h.dbService != nil {
		dbStatus = "ok"
		if err := h.dbService.Ping(); err != nil {
			dbStatus = "unreachable"
		}
	}
	aiStatus := "disabled"
	if h.aiEnabled {
		aiStatus = "configured"
	}

	response.RespondOK(c, gin.H{
		"status": "ok",
		"services": gin.H{
			"database":     dbStatus,
			"hosted_model": aiStatus,
		},
		"endpoints": []string{
			"POST /projects",
			"GET /projects/:id",
			"POST /analyze-brief",
			"PUT /update-brief",
			"GET /projects/:id/briefs",
			"POST /strategic-analysis",
			"POST /generate-visual-concepts",
			"POST /generate-galaxy",
			"POST /blend-concepts",
			"POST /apply-style",
			"POST /parse-document",
			"POST /generate-brand-kit",
			"POST /finalize-brand-kit",
			"GET /brand-kit/:kit_id",
			"GET /projects/:id/assets",
		},
	})
}
