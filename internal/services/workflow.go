package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// workflowGuard enforces the project state machine at phase boundaries.
// Phases invoked without a project id run unguarded; explorations are
// allowed before a project exists.
type workflowGuard struct {
	log         *logger.Logger
	projectRepo repos.ProjectRepo
}

// require loads the project and checks it has reached the required state.
// A nil project id passes with a nil project.
func (g workflowGuard) require(ctx context.Context, projectID *uuid.UUID, required string) (*types.Project, error) {
	if projectID == nil {
		return nil, nil
	}

	project, err := g.projectRepo.GetByID(ctx, nil, *projectID)
	if err != nil {
		return nil, err
	}
	if !types.StateReached(project.WorkflowState, required) {
		return nil, fmt.Errorf("%w: project %s is %q, phase requires %q",
			errors.ErrPreconditionFailed, project.ID, project.WorkflowState, required)
	}
	return project, nil
}

// advance best-effort moves the project forward. Failures are logged and
// swallowed; the phase result is already computed at this point.
func (g workflowGuard) advance(ctx context.Context, project *types.Project, next string) {
	if project == nil {
		return
	}
	target := types.AdvanceState(project.WorkflowState, next)
	if target == project.WorkflowState {
		return
	}
	if err := g.projectRepo.UpdateWorkflowState(ctx, nil, project.ID, target); err != nil {
		g.log.Error("workflow state update failed", "project_id", project.ID, "state", target, "error", err)
		return
	}
	project.WorkflowState = target
}
