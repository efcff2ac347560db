package brand

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
	pkgerr "github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type GeneratedAssetRepo interface {
	Create(ctx context.Context, tx *gorm.DB, asset *types.GeneratedAsset) (*types.GeneratedAsset, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.GeneratedAsset, error)
	GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, assetType string) ([]*types.GeneratedAsset, error)
}

type generatedAssetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGeneratedAssetRepo(db *gorm.DB, baseLog *logger.Logger) GeneratedAssetRepo {
	return &generatedAssetRepo{db: db, log: baseLog.With("repo", "GeneratedAssetRepo")}
}

func (r *generatedAssetRepo) Create(ctx context.Context, tx *gorm.DB, asset *types.GeneratedAsset) (*types.GeneratedAsset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(asset).Error; err != nil {
		return nil, err
	}
	return asset, nil
}

func (r *generatedAssetRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.GeneratedAsset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.GeneratedAsset
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerr.ErrNotFound
		}
		return nil, err
	}
	return &result, nil
}

func (r *generatedAssetRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID, assetType string) ([]*types.GeneratedAsset, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	q := transaction.WithContext(ctx).Where("project_id = ?", projectID)
	if strings.TrimSpace(assetType) != "" {
		q = q.Where("asset_type = ?", assetType)
	}
	var results []*types.GeneratedAsset
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
