package models

// Scenario represents a coral-conservation scenario scoped to one project
type Scenario struct {
	BaseModel
	Title       string           `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description *string          `json:"description" gorm:"size:500" validate:"omitempty,max=500"`
	Project     Project          `json:"project" gorm:"type:varchar(50);not null;index" validate:"required"`
	Status      ScenarioStatus   `json:"status" gorm:"type:varchar(50);default:'planning';index"`
	Priority    ScenarioPriority `json:"priority" gorm:"type:varchar(50);default:'medium'"`
	DataStatus  DataStatus       `json:"data_status" gorm:"type:varchar(50);default:'data-pending'"`
	UserID      *string          `json:"user_id" gorm:"size:64;index"`
}

// TableName returns the table name for Scenario
func (Scenario) TableName() string {
	return "scenarios"
}
