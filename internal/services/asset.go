package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/brandcopilot/brand-copilot/internal/data/repos"
	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type AssetService interface {
	ListAssets(ctx context.Context, projectID uuid.UUID, assetType string) ([]*types.GeneratedAsset, error)
}

type assetService struct {
	db        *gorm.DB
	log       *logger.Logger
	assetRepo repos.GeneratedAssetRepo
}

func NewAssetService(db *gorm.DB, log *logger.Logger, assetRepo repos.GeneratedAssetRepo) AssetService {
	return &assetService{
		db:        db,
		log:       log.With("service", "AssetService"),
		assetRepo: assetRepo,
	}
}

func (s *assetService) ListAssets(ctx context.Context, projectID uuid.UUID, assetType string) ([]*types.GeneratedAsset, error) {
	return s.assetRepo.GetByProjectID(ctx, nil, projectID, assetType)
}
