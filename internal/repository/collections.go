package repository

import (
	"context"

	"github.com/adrianstier/rse-tracker/internal/database/models"

	"gorm.io/gorm"
)

// Per-collection descriptors. Ordering is fixed: scenarios and action
// items by creation recency, timeline events by event date.
var (
	ScenarioDescriptor = Descriptor{
		Kind:          "scenarios",
		Singular:      "scenario",
		OrderClause:   "created_at DESC",
		FilterColumns: []string{"project", "status"},
	}
	ActionItemDescriptor = Descriptor{
		Kind:          "action_items",
		Singular:      "action item",
		OrderClause:   "created_at DESC",
		FilterColumns: []string{"status", "owner", "scenario_id", "project"},
	}
	TimelineEventDescriptor = Descriptor{
		Kind:          "timeline_events",
		Singular:      "timeline event",
		OrderClause:   "event_date ASC",
		FilterColumns: []string{"project"},
	}
)

// NewScenarioRepository creates the scenarios repository
func NewScenarioRepository(db *gorm.DB) *GormRepository[models.Scenario] {
	return NewGormRepository[models.Scenario](db, ScenarioDescriptor)
}

// NewTimelineEventRepository creates the timeline events repository
func NewTimelineEventRepository(db *gorm.DB) *GormRepository[models.TimelineEvent] {
	return NewGormRepository[models.TimelineEvent](db, TimelineEventDescriptor)
}

// ActionItemRepository extends the uniform contract with the
// scenario-resolving list variant
type ActionItemRepository struct {
	*GormRepository[models.ActionItem]
	db *gorm.DB
}

// NewActionItemRepository creates the action items repository
func NewActionItemRepository(db *gorm.DB) *ActionItemRepository {
	return &ActionItemRepository{
		GormRepository: NewGormRepository[models.ActionItem](db, ActionItemDescriptor),
		db:             db,
	}
}

// ListWithScenarios retrieves action items with their referenced scenario
// resolved. The reference is weak: a dangling or nil scenario_id leaves
// Scenario nil rather than failing.
func (r *ActionItemRepository) ListWithScenarios(ctx context.Context, filters map[string]interface{}) ([]models.ActionItem, error) {
	q, err := r.applyFilters(r.db.WithContext(ctx).Model(&models.ActionItem{}), filters)
	if err != nil {
		return nil, err
	}

	var rows []models.ActionItem
	if err := q.Preload("Scenario").Order(r.desc.OrderClause).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
