package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brandcopilot/brand-copilot/internal/http/response"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
	"github.com/brandcopilot/brand-copilot/internal/services"
)

type ProjectHandler struct {
	log            *logger.Logger
	projectService services.ProjectService
}

func NewProjectHandler(log *logger.Logger, projectService services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		log:            log.With("handler", "ProjectHandler"),
		projectService: projectService,
	}
}

type createProjectRequest struct {
	Name   string `json:"name" binding:"required"`
	UserID string `json:"user_id"`
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req.Name, req.UserID)
	if err != nil {
		h.log.Error("CreateProject failed", "error", err)
		response.RespondServiceError(c, "create_project_failed", err)
		return
	}
	response.RespondOK(c, gin.H{
		"project_id": project.ID,
		"message":    "Project created",
	})
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID := c.Param("id")

	projects, err := h.projectService.ListProjects(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("ListProjects failed", "error", err, "user_id", userID)
		response.RespondServiceError(c, "list_projects_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"projects": projects})
}
