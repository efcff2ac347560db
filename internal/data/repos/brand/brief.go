package brand

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
	pkgerr "github.com/brandcopilot/brand-copilot/internal/pkg/errors"
	"github.com/brandcopilot/brand-copilot/internal/pkg/logger"
)

type BriefRepo interface {
	Create(ctx context.Context, tx *gorm.DB, brief *types.Brief) (*types.Brief, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Brief, error)
	GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Brief, error)
	UpdateExtraction(ctx context.Context, tx *gorm.DB, id uuid.UUID, keywords, attributes datatypes.JSON) error
}

type briefRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBriefRepo(db *gorm.DB, baseLog *logger.Logger) BriefRepo {
	return &briefRepo{db: db, log: baseLog.With("repo", "BriefRepo")}
}

func (r *briefRepo) Create(ctx context.Context, tx *gorm.DB, brief *types.Brief) (*types.Brief, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(brief).Error; err != nil {
		return nil, err
	}
	return brief, nil
}

func (r *briefRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Brief, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var result types.Brief
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

func (r *briefRepo) GetByProjectID(ctx context.Context, tx *gorm.DB, projectID uuid.UUID) ([]*types.Brief, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Brief
	if err := transaction.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateExtraction overwrites the user-editable keyword/attribute fields.
// Last write wins; no versioning.
func (r *briefRepo) UpdateExtraction(ctx context.Context, tx *gorm.DB, id uuid.UUID, keywords, attributes datatypes.JSON) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Model(&types.Brief{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"extracted_keywords":   keywords,
			"extracted_attributes": attributes,
			"updated_at":           time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return pkgerr.ErrNotFound
	}
	return nil
}
