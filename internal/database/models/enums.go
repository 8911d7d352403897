package models

// Project is the fixed two-value program enumeration
type Project string

const (
	ProjectMote     Project = "mote"
	ProjectFundemar Project = "fundemar"
)

// ScenarioStatus represents the status of a scenario
type ScenarioStatus string

const (
	ScenarioStatusPlanning  ScenarioStatus = "planning"
	ScenarioStatusActive    ScenarioStatus = "active"
	ScenarioStatusCompleted ScenarioStatus = "completed"
	ScenarioStatusOnHold    ScenarioStatus = "on_hold"
)

// ScenarioPriority represents the priority of a scenario
type ScenarioPriority string

const (
	ScenarioPriorityLow      ScenarioPriority = "low"
	ScenarioPriorityMedium   ScenarioPriority = "medium"
	ScenarioPriorityHigh     ScenarioPriority = "high"
	ScenarioPriorityCritical ScenarioPriority = "critical"
)

// DataStatus represents the readiness of a scenario's underlying data
type DataStatus string

const (
	DataStatusReady   DataStatus = "data-ready"
	DataStatusPartial DataStatus = "data-partial"
	DataStatusPending DataStatus = "data-pending"
)

// ActionItemStatus represents the status of an action item.
// Deliberately a permissive enumeration: any value may transition to any
// other value, there is no enforced workflow graph.
type ActionItemStatus string

const (
	ActionItemStatusTodo       ActionItemStatus = "todo"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusDone       ActionItemStatus = "done"
	ActionItemStatusBlocked    ActionItemStatus = "blocked"
)

// TimelineEventType represents the type of a timeline event
type TimelineEventType string

const (
	TimelineEventTypeMilestone   TimelineEventType = "milestone"
	TimelineEventTypeDeadline    TimelineEventType = "deadline"
	TimelineEventTypeMeeting     TimelineEventType = "meeting"
	TimelineEventTypeDeliverable TimelineEventType = "deliverable"
)

// IsValid checks if the Project is valid
func (p Project) IsValid() bool {
	switch p {
	case ProjectMote, ProjectFundemar:
		return true
	}
	return false
}

// IsValid checks if the ScenarioStatus is valid
func (s ScenarioStatus) IsValid() bool {
	switch s {
	case ScenarioStatusPlanning, ScenarioStatusActive, ScenarioStatusCompleted, ScenarioStatusOnHold:
		return true
	}
	return false
}

// IsValid checks if the ScenarioPriority is valid
func (p ScenarioPriority) IsValid() bool {
	switch p {
	case ScenarioPriorityLow, ScenarioPriorityMedium, ScenarioPriorityHigh, ScenarioPriorityCritical:
		return true
	}
	return false
}

// IsValid checks if the DataStatus is valid
func (d DataStatus) IsValid() bool {
	switch d {
	case DataStatusReady, DataStatusPartial, DataStatusPending:
		return true
	}
	return false
}

// IsValid checks if the ActionItemStatus is valid
func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemStatusTodo, ActionItemStatusInProgress, ActionItemStatusDone, ActionItemStatusBlocked:
		return true
	}
	return false
}

// IsValid checks if the TimelineEventType is valid
func (t TimelineEventType) IsValid() bool {
	switch t {
	case TimelineEventTypeMilestone, TimelineEventTypeDeadline, TimelineEventTypeMeeting, TimelineEventTypeDeliverable:
		return true
	}
	return false
}
