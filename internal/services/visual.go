package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/visual"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// ConceptsResult is the generate-visual-concepts phase output.
type ConceptsResult struct {
	Concepts []visual.Concept   `json:"concepts"`
	Metadata GenerationMetadata `json:"generation_metadata"`
}

type GenerationMetadata struct {
	GeneratedAt time.Time  `json:"generated_at"`
	StyleBucket string     `json:"style_bucket"`
	BriefID     uuid.UUID  `json:"brief_id"`
	ProjectID   *uuid.UUID `json:"project_id,omitempty"`
}

// GalaxyResult is the generate-galaxy output.
type GalaxyResult struct {
	Metaphors       []visual.Metaphor       `json:"metaphors"`
	PaletteOptions  []visual.PaletteOption  `json:"palette_options"`
	FontPairs       []visual.FontPairOption `json:"font_pairs"`
	SavedToDatabase bool                    `json:"saved_to_database"`
}

type VisualService interface {
	GenerateConcepts(ctx context.Context, briefID uuid.UUID, analysis strategy.Analysis, keywords, attributes []string, prefs map[string]int, brandName string, projectID *uuid.UUID) (ConceptsResult, error)
	GenerateGalaxy(ctx context.Context, keywords, attributes []string, briefID, projectID *uuid.UUID, demoMode bool) (GalaxyResult, error)
}

type visualService struct {
	db        *gorm.DB
	log       *logger.Logger
	assetRepo repos.GeneratedAssetRepo
	guard     workflowGuard
	generator *visual.Generator
}

func NewVisualService(
	db *gorm.DB,
	log *logger.Logger,
	assetRepo repos.GeneratedAssetRepo,
	projectRepo repos.ProjectRepo,
	generator *visual.Generator,
) VisualService {
	serviceLog := log.With("service", "VisualService")
	return &visualService{
		db:        db,
		log:       serviceLog,
		assetRepo: assetRepo,
		guard:     workflowGuard{log: serviceLog, projectRepo: projectRepo},
		generator: generator,
	}
}

func (s *visualService) GenerateConcepts(ctx context.Context, briefID uuid.UUID, analysis strategy.Analysis, keywords, attributes []string, prefs map[string]int, brandName string, projectID *uuid.UUID) (ConceptsResult, error) {
	project, err := s.guard.require(ctx, projectID, types.StateStrategicallyAnalyzed)
	if err != nil {
		return ConceptsResult{}, err
	}

	concepts := s.generator.GenerateConcepts(ctx, brandName, analysis, keywords, attributes, prefs)

	s.guard.advance(ctx, project, types.StateConceptsGenerated)
	return ConceptsResult{
		Concepts: concepts,
		Metadata: GenerationMetadata{
			GeneratedAt: time.Now().UTC(),
			StyleBucket: visual.SelectBucket(prefs),
			BriefID:     briefID,
			ProjectID:   projectID,
		},
	}, nil
}

func (s *visualService) GenerateGalaxy(ctx context.Context, keywords, attributes []string, briefID, projectID *uuid.UUID, demoMode bool) (GalaxyResult, error) {
	metaphors, err := s.generator.GenerateMetaphors(ctx, keywords, attributes, demoMode)
	if err != nil {
		return GalaxyResult{}, err
	}

	result := GalaxyResult{
		Metaphors:      metaphors,
		PaletteOptions: visual.GeneratePaletteOptions(attributes),
		FontPairs:      visual.GenerateFontPairs(attributes),
	}

	saved := true
	for _, m := range metaphors {
		data, _ := json.Marshal(m)
		params, _ := json.Marshal(map[string]any{"demo_mode": demoMode})
		asset := &types.GeneratedAsset{
			ProjectID:        projectID,
			BriefID:          briefID,
			AssetType:        types.AssetTypeVisualMetaphor,
			AssetData:        data,
			SourcePrompt:     m.Prompt,
			GenerationParams: params,
		}
		if _, err := s.assetRepo.Create(ctx, nil, asset); err != nil {
			s.log.Error("metaphor asset insert failed", "metaphor_id", m.ID, "error", err)
			saved = false
		}
	}
	result.SavedToDatabase = saved
	return result, nil
}
