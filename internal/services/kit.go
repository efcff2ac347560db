package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/clients/slack"
	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/kit"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/strategy"
	"github.com/brandcopilot/brand-copilot/internal/pipeline/visual"
	"github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

// KitResult is the generate/finalize brand-kit output. AssetID is nil when
// the best-effort persist failed; clients then get the kit but no stable id.
type KitResult struct {
	AssetID       *uuid.UUID   `json:"kit_id,omitempty"`
	BrandKit      kit.BrandKit `json:"brand_kit"`
	DownloadReady bool         `json:"download_ready"`
}

type KitService interface {
	GenerateBrandKit(ctx context.Context, brandName string, concept visual.Concept, analysis strategy.Analysis, briefID uuid.UUID, projectID *uuid.UUID) (KitResult, error)
	FinalizeBrandKit(ctx context.Context, brandName string, concept visual.Concept, analysis strategy.Analysis, curatedAssets []uuid.UUID, briefID uuid.UUID, projectID uuid.UUID) (KitResult, error)
	GetBrandKit(ctx context.Context, kitID uuid.UUID) (*types.GeneratedAsset, error)
}

type kitService struct {
	db        *gorm.DB
	log       *logger.Logger
	assetRepo repos.GeneratedAssetRepo
	guard     workflowGuard
	assembler *kit.Assembler
	notifier  *slack.Notifier
}

func NewKitService(
	db *gorm.DB,
	log *logger.Logger,
	assetRepo repos.GeneratedAssetRepo,
	projectRepo repos.ProjectRepo,
	assembler *kit.Assembler,
	notifier *slack.Notifier,
) KitService {
	serviceLog := log.With("service", "KitService")
	return &kitService{
		db:        db,
		log:       serviceLog,
		assetRepo: assetRepo,
		guard:     workflowGuard{log: serviceLog, projectRepo: projectRepo},
		assembler: assembler,
		notifier:  notifier,
	}
}

func (s *kitService) GenerateBrandKit(ctx context.Context, brandName string, concept visual.Concept, analysis strategy.Analysis, briefID uuid.UUID, projectID *uuid.UUID) (KitResult, error) {
	_, err := s.guard.require(ctx, projectID, types.StateConceptsGenerated)
	if err != nil {
		return KitResult{}, err
	}

	assembled := s.assembler.Assemble(ctx, brandName, concept, analysis)
	result := KitResult{BrandKit: assembled}
	result.AssetID = s.persistKit(ctx, assembled, concept, projectID, &briefID, false)
	return result, nil
}

func (s *kitService) FinalizeBrandKit(ctx context.Context, brandName string, concept visual.Concept, analysis strategy.Analysis, curatedAssets []uuid.UUID, briefID uuid.UUID, projectID uuid.UUID) (KitResult, error) {
	project, err := s.guard.require(ctx, &projectID, types.StateConceptsGenerated)
	if err != nil {
		return KitResult{}, err
	}

	assembled := s.assembler.Assemble(ctx, brandName, concept, analysis)
	result := KitResult{BrandKit: assembled}
	result.AssetID = s.persistKit(ctx, assembled, concept, &projectID, &briefID, true, curatedAssets...)
	result.DownloadReady = result.AssetID != nil

	s.guard.advance(ctx, project, types.StateFinalized)

	if s.notifier != nil && result.AssetID != nil {
		s.notifier.NotifyKitFinalized(brandName, result.AssetID.String())
	}
	return result, nil
}

func (s *kitService) GetBrandKit(ctx context.Context, kitID uuid.UUID) (*types.GeneratedAsset, error) {
	asset, err := s.assetRepo.GetByID(ctx, nil, kitID)
	if err != nil {
		return nil, err
	}
	if asset.AssetType != types.AssetTypeFinalBrandKit {
		return nil, fmt.Errorf("%w: asset %s is not a brand kit", errors.ErrNotFound, kitID)
	}
	return asset, nil
}

func (s *kitService) persistKit(ctx context.Context, assembled kit.BrandKit, concept visual.Concept, projectID, briefID *uuid.UUID, finalized bool, curatedAssets ...uuid.UUID) *uuid.UUID {
	data, _ := json.Marshal(assembled)
	params, _ := json.Marshal(map[string]any{
		"concept_id":     concept.ID,
		"finalized":      finalized,
		"curated_assets": curatedAssets,
	})
	asset := &types.GeneratedAsset{
		ProjectID:        projectID,
		BriefID:          briefID,
		AssetType:        types.AssetTypeFinalBrandKit,
		AssetData:        data,
		SourcePrompt:     concept.StylePrompt,
		GenerationParams: params,
	}
	created, err := s.assetRepo.Create(ctx, nil, asset)
	if err != nil {
		s.log.Error("brand kit insert failed, returning without id", "error", err)
		return nil
	}
	return &created.ID
}
