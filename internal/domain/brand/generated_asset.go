package brand

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AssetTypeVisualMetaphor = "visual_metaphor"
	AssetTypeColorPalette   = "color_palette"
	AssetTypeTypographyPair = "typography_pair"
	AssetTypeBlendedImage   = "blended_image"
	AssetTypeStyledImage    = "styled_image"
	AssetTypeFinalBrandKit  = "final_brand_kit"
)

// GeneratedAsset rows are append-only: a project's asset set is the
// concatenation of all rows filtered by project id and, optionally, type.
type GeneratedAsset struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Project   *Project   `gorm:"foreignKey:ProjectID;references:ID" json:"project,omitempty"`
	BriefID   *uuid.UUID `gorm:"type:uuid;index" json:"brief_id,omitempty"`
	Brief     *Brief     `gorm:"foreignKey:BriefID;references:ID" json:"brief,omitempty"`

	AssetType        string         `gorm:"column:asset_type;not null;index" json:"asset_type"`
	AssetData        datatypes.JSON `gorm:"column:asset_data;type:jsonb" json:"asset_data"`
	SourcePrompt     string         `gorm:"column:source_prompt;type:text" json:"source_prompt"`
	GenerationParams datatypes.JSON `gorm:"column:generation_params;type:jsonb" json:"generation_params"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (GeneratedAsset) TableName() string { return "generated_asset" }

func (a *GeneratedAsset) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
