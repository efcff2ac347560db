package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// StrategicResult pairs the analysis with the persisted row id, when the
// insert succeeded.
type StrategicResult struct {
	AnalysisID *uuid.UUID        `json:"analysis_id,omitempty"`
	BriefID    uuid.UUID         `json:"brief_id"`
	ProjectID  *uuid.UUID        `json:"project_id,omitempty"`
	Analysis   strategy.Analysis `json:"analysis"`
}

type StrategicService interface {
	Analyze(ctx context.Context, briefID uuid.UUID, text string, keywords, attributes []string, projectID *uuid.UUID) (StrategicResult, error)
}

type strategicService struct {
	db           *gorm.DB
	log          *logger.Logger
	analysisRepo repos.StrategicAnalysisRepo
	guard        workflowGuard
	synthesizer  *strategy.Synthesizer
}

func NewStrategicService(
	db *gorm.DB,
	log *logger.Logger,
	analysisRepo repos.StrategicAnalysisRepo,
	projectRepo repos.ProjectRepo,
	synthesizer *strategy.Synthesizer,
) StrategicService {
	serviceLog := log.With("service", "StrategicService")
	return &strategicService{
		db:           db,
		log:          serviceLog,
		analysisRepo: analysisRepo,
		guard:        workflowGuard{log: serviceLog, projectRepo: projectRepo},
		synthesizer:  synthesizer,
	}
}

func (s *strategicService) Analyze(ctx context.Context, briefID uuid.UUID, text string, keywords, attributes []string, projectID *uuid.UUID) (StrategicResult, error) {
	project, err := s.guard.require(ctx, projectID, types.StateBriefAnalyzed)
	if err != nil {
		return StrategicResult{}, err
	}

	analysis := s.synthesizer.Synthesize(ctx, text, keywords, attributes)
	result := StrategicResult{
		BriefID:   briefID,
		ProjectID: projectID,
		Analysis:  analysis,
	}

	valuesJSON, _ := json.Marshal(analysis.Values)
	traitsJSON, _ := json.Marshal(analysis.PersonalityTraits)
	tensionsJSON, _ := json.Marshal(analysis.CreativeTensions)
	row := &types.StrategicAnalysis{
		BriefID:           briefID,
		Purpose:           analysis.Purpose,
		Values:            valuesJSON,
		PersonalityTraits: traitsJSON,
		CreativeTensions:  tensionsJSON,
	}
	if created, err := s.analysisRepo.Create(ctx, nil, row); err != nil {
		s.log.Error("strategic analysis insert failed, returning without id", "brief_id", briefID, "error", err)
	} else {
		result.AnalysisID = &created.ID
	}

	s.guard.advance(ctx, project, types.StateStrategicallyAnalyzed)
	return result, nil
}
