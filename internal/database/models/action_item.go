package models

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem represents a tracked task, optionally attached to a scenario.
// ScenarioID is a weak reference: it is used for lookup only and may dangle
// after the referenced scenario is deleted. The read side must tolerate that.
type ActionItem struct {
	BaseModel
	Title       string           `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description *string          `json:"description" gorm:"size:300" validate:"omitempty,max=300"`
	ScenarioID  *uuid.UUID       `json:"scenario_id" gorm:"type:uuid;index"`
	Owner       *string          `json:"owner" gorm:"size:100;index"`
	Status      ActionItemStatus `json:"status" gorm:"type:varchar(50);default:'todo';index"`
	DueDate     *time.Time       `json:"due_date" gorm:"type:date"`
	Project     *Project         `json:"project" gorm:"type:varchar(50);index"`
	UserID      *string          `json:"user_id" gorm:"size:64;index"`

	// Resolved weak reference; nil when ScenarioID is nil or dangling
	Scenario *Scenario `json:"scenario,omitempty" gorm:"foreignKey:ScenarioID;references:ID"`
}

// TableName returns the table name for ActionItem
func (ActionItem) TableName() string {
	return "action_items"
}
