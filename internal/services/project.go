package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type ProjectService interface {
	CreateProject(ctx context.Context, name, ownerID string) (*types.Project, error)
	ListProjects(ctx context.Context, ownerID string) ([]*types.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*types.Project, error)
}

type projectService struct {
	db          *gorm.DB
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

func NewProjectService(db *gorm.DB, log *logger.Logger, projectRepo repos.ProjectRepo) ProjectService {
	return &projectService{
		db:          db,
		log:         log.With("service", "ProjectService"),
		projectRepo: projectRepo,
	}
}

func (s *projectService) CreateProject(ctx context.Context, name, ownerID string) (*types.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name required", errors.ErrInvalidArgument)
	}

	project := &types.Project{
		Name:          name,
		OwnerID:       strings.TrimSpace(ownerID),
		WorkflowState: types.StateCreated,
	}
	created, err := s.projectRepo.Create(ctx, nil, project)
	if err != nil {
		return nil, err
	}
	s.log.Info("project created", "project_id", created.ID, "owner_id", created.OwnerID)
	return created, nil
}

func (s *projectService) ListProjects(ctx context.Context, ownerID string) ([]*types.Project, error) {
	return s.projectRepo.GetByOwnerID(ctx, nil, strings.TrimSpace(ownerID))
}

func (s *projectService) GetProject(ctx context.Context, id uuid.UUID) (*types.Project, error) {
	return s.projectRepo.GetByID(ctx, nil, id)
}
