package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	types "github.com/brandcopilot/brand-copilot/internal/domain"
)

func SeedProject(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Project {
	tb.Helper()
	p := &types.Project{
		ID:            uuid.New(),
		Name:          name,
		OwnerID:       "owner-1",
		WorkflowState: types.StateCreated,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed project: %v", err)
	}
	return p
}

func SeedBrief(tb testing.TB, ctx context.Context, tx *gorm.DB, projectID *uuid.UUID) *types.Brief {
	tb.Helper()
	b := &types.Brief{
		ID:         uuid.New(),
		ProjectID:  projectID,
		RawText:    "a sustainable coffee brand for gen z",
		Keywords:   datatypes.JSON([]byte(`["coffee","sustainable"]`)),
		Attributes: datatypes.JSON([]byte(`["sustentável"]`)),
		Sentiment:  "neutral",
	}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed brief: %v", err)
	}
	return b
}

func SeedAsset(tb testing.TB, ctx context.Context, tx *gorm.DB, projectID, briefID *uuid.UUID, assetType string) *types.GeneratedAsset {
	tb.Helper()
	a := &types.GeneratedAsset{
		ID:               uuid.New(),
		ProjectID:        projectID,
		BriefID:          briefID,
		AssetType:        assetType,
		AssetData:        datatypes.JSON([]byte(`{}`)),
		GenerationParams: datatypes.JSON([]byte(`{}`)),
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed asset: %v", err)
	}
	return a
}

func PtrUUID(id uuid.UUID) *uuid.UUID { return &id }
