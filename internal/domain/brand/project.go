package brand

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workflow states a project moves through. Transitions are monotonic; each
// pipeline endpoint requires the project to have reached the previous state.
const (
	StateCreated               = "created"
	StateBriefAnalyzed         = "brief_analyzed"
	StateStrategicallyAnalyzed = "strategically_analyzed"
	StateConceptsGenerated     = "concepts_generated"
	StateFinalized             = "finalized"
)

var stateRank = map[string]int{
	StateCreated:               0,
	StateBriefAnalyzed:         1,
	StateStrategicallyAnalyzed: 2,
	StateConceptsGenerated:     3,
	StateFinalized:             4,
}

// StateRank returns the ordinal of a workflow state, or -1 for unknown states.
func StateRank(state string) int {
	r, ok := stateRank[state]
	if !ok {
		return -1
	}
	return r
}

// StateReached reports whether current is at or past required.
func StateReached(current, required string) bool {
	return StateRank(current) >= StateRank(required) && StateRank(required) >= 0
}

// AdvanceState returns the later of current and next. States never move
// backwards: re-running an earlier phase keeps the project where it is.
func AdvanceState(current, next string) string {
	if StateRank(next) > StateRank(current) {
		return next
	}
	return current
}

type Project struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	OwnerID       string    `gorm:"column:owner_id;index" json:"owner_id"`
	WorkflowState string    `gorm:"column:workflow_state;not null;default:'created'" json:"workflow_state"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (Project) TableName() string { return "project" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.WorkflowState == "" {
		p.WorkflowState = StateCreated
	}
	return nil
}
