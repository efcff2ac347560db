package brand

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StrategicAnalysis is append-only: each strategic-analysis call creates a
// fresh row for the brief, never merged with earlier ones.
type StrategicAnalysis struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BriefID uuid.UUID `gorm:"type:uuid;not null;index" json:"brief_id"`
	Brief   *Brief    `gorm:"foreignKey:BriefID;references:ID" json:"brief,omitempty"`

	Purpose           string         `gorm:"type:text" json:"purpose"`
	Values            datatypes.JSON `gorm:"type:jsonb" json:"values"`
	PersonalityTraits datatypes.JSON `gorm:"column:personality_traits;type:jsonb" json:"personality_traits"`
	CreativeTensions  datatypes.JSON `gorm:"column:creative_tensions;type:jsonb" json:"creative_tensions"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (StrategicAnalysis) TableName() string { return "strategic_analysis" }

func (s *StrategicAnalysis) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
