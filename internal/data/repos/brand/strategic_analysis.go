package brand

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type StrategicAnalysisRepo interface {
	Create(ctx context.Context, tx *gorm.DB, analysis *types.StrategicAnalysis) (*types.StrategicAnalysis, error)
	GetByBriefID(ctx context.Context, tx *gorm.DB, briefID uuid.UUID) ([]*types.StrategicAnalysis, error)
}

type strategicAnalysisRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStrategicAnalysisRepo(db *gorm.DB, baseLog *logger.Logger) StrategicAnalysisRepo {
	return &strategicAnalysisRepo{db: db, log: baseLog.With("repo", "StrategicAnalysisRepo")}
}

func (r *strategicAnalysisRepo) Create(ctx context.Context, tx *gorm.DB, analysis *types.StrategicAnalysis) (*types.StrategicAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(analysis).Error; err != nil {
		return nil, err
	}
	return analysis, nil
}

func (r *strategicAnalysisRepo) GetByBriefID(ctx context.Context, tx *gorm.DB, briefID uuid.UUID) ([]*types.StrategicAnalysis, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.StrategicAnalysis
	if err := transaction.WithContext(ctx).
		Where("brief_id = ?", briefID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
