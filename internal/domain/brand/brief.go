package brand

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Brief struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`
	Project   *Project   `gorm:"foreignKey:ProjectID;references:ID" json:"project,omitempty"`

	RawText string `gorm:"column:raw_text;type:text;not null" json:"raw_text"`

	// Ordered keyword list and attribute set, both overwritable by the
	// brief-update endpoint. Last write wins, no versioning.
	Keywords   datatypes.JSON `gorm:"column:extracted_keywords;type:jsonb" json:"extracted_keywords"`
	Attributes datatypes.JSON `gorm:"column:extracted_attributes;type:jsonb" json:"extracted_attributes"`
	Sentiment  string         `gorm:"column:sentiment_label" json:"sentiment_label"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Brief) TableName() string { return "brief" }

func (b *Brief) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
