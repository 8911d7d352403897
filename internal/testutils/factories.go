package testutils

import (
	"time"

	"github.com/adrianstier/rse-tracker/internal/database/models"

	"github.com/google/uuid"
)

// ScenarioFactory provides methods to create test Scenario data
type ScenarioFactory struct{}

// NewScenarioFactory creates a new ScenarioFactory
func NewScenarioFactory() *ScenarioFactory {
	return &ScenarioFactory{}
}

// Create creates a test Scenario with default values
func (f *ScenarioFactory) Create() *models.Scenario {
	description := "A test restoration scenario"
	return &models.Scenario{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:       "Test Scenario",
		Description: &description,
		Project:     models.ProjectMote,
		Status:      models.ScenarioStatusPlanning,
		Priority:    models.ScenarioPriorityMedium,
		DataStatus:  models.DataStatusPending,
	}
}

// WithProject sets a custom project for the scenario
func (f *ScenarioFactory) WithProject(project models.Project) *models.Scenario {
	scenario := f.Create()
	scenario.Project = project
	return scenario
}

// WithStatus sets a custom status for the scenario
func (f *ScenarioFactory) WithStatus(status models.ScenarioStatus) *models.Scenario {
	scenario := f.Create()
	scenario.Status = status
	return scenario
}

// WithTitle sets a custom title for the scenario
func (f *ScenarioFactory) WithTitle(title string) *models.Scenario {
	scenario := f.Create()
	scenario.Title = title
	return scenario
}

// ActionItemFactory provides methods to create test ActionItem data
type ActionItemFactory struct{}

// NewActionItemFactory creates a new ActionItemFactory
func NewActionItemFactory() *ActionItemFactory {
	return &ActionItemFactory{}
}

// Create creates a test ActionItem with default values
func (f *ActionItemFactory) Create() *models.ActionItem {
	owner := "Test Owner"
	project := models.ProjectMote
	return &models.ActionItem{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:   "Test Action Item",
		Owner:   &owner,
		Status:  models.ActionItemStatusTodo,
		Project: &project,
	}
}

// WithScenario links the action item to a scenario
func (f *ActionItemFactory) WithScenario(scenarioID uuid.UUID) *models.ActionItem {
	item := f.Create()
	item.ScenarioID = &scenarioID
	return item
}

// WithStatus sets a custom status for the action item
func (f *ActionItemFactory) WithStatus(status models.ActionItemStatus) *models.ActionItem {
	item := f.Create()
	item.Status = status
	return item
}

// WithTitle sets a custom title for the action item
func (f *ActionItemFactory) WithTitle(title string) *models.ActionItem {
	item := f.Create()
	item.Title = title
	return item
}

// TimelineEventFactory provides methods to create test TimelineEvent data
type TimelineEventFactory struct{}

// NewTimelineEventFactory creates a new TimelineEventFactory
func NewTimelineEventFactory() *TimelineEventFactory {
	return &TimelineEventFactory{}
}

// Create creates a test TimelineEvent with default values
func (f *TimelineEventFactory) Create() *models.TimelineEvent {
	eventType := models.TimelineEventTypeMilestone
	project := models.ProjectMote
	return &models.TimelineEvent{
		ID:        uuid.New(),
		Title:     "Test Timeline Event",
		EventDate: time.Now().AddDate(0, 0, 7),
		EventType: &eventType,
		Project:   &project,
		CreatedAt: time.Now(),
	}
}

// WithEventDate sets a custom date for the event
func (f *TimelineEventFactory) WithEventDate(date time.Time) *models.TimelineEvent {
	event := f.Create()
	event.EventDate = date
	return event
}

// WithEventType sets a custom type for the event
func (f *TimelineEventFactory) WithEventType(eventType models.TimelineEventType) *models.TimelineEvent {
	event := f.Create()
	event.EventType = &eventType
	return event
}
