package service

import (
	"context"
	"fmt"

	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/repository"
)

// DashboardService aggregates collection counts for the overview page
type DashboardService struct {
	scenarios   repository.Repository[models.Scenario]
	actionItems repository.ActionItemRepositoryInterface
	events      repository.Repository[models.TimelineEvent]
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(scenarios repository.Repository[models.Scenario], actionItems repository.ActionItemRepositoryInterface, events repository.Repository[models.TimelineEvent]) *DashboardService {
	return &DashboardService{
		scenarios:   scenarios,
		actionItems: actionItems,
		events:      events,
	}
}

// DashboardStats is the aggregate view of all three collections
type DashboardStats struct {
	TotalScenarios      int64            `json:"total_scenarios"`
	ScenariosByStatus   map[string]int64 `json:"scenarios_by_status"`
	ScenariosByPriority map[string]int64 `json:"scenarios_by_priority"`
	ScenariosByData     map[string]int64 `json:"scenarios_by_data_status"`
	TotalActionItems    int64            `json:"total_action_items"`
	ActionItemsByStatus map[string]int64 `json:"action_items_by_status"`
	TotalTimelineEvents int64            `json:"total_timeline_events"`
}

// GetStats computes the dashboard aggregates, optionally scoped to one
// project. Counts are read directly from the store; the dashboard is a
// point-in-time summary, not a cached region.
func (s *DashboardService) GetStats(ctx context.Context, project string) (*DashboardStats, error) {
	var filters map[string]interface{}
	if project != "" {
		filters = map[string]interface{}{"project": project}
	}

	stats := &DashboardStats{}
	var err error

	if stats.TotalScenarios, err = s.scenarios.Count(ctx, filters); err != nil {
		return nil, fmt.Errorf("failed to count scenarios: %w", err)
	}
	if stats.ScenariosByStatus, err = s.scenarios.CountByColumn(ctx, "status", filters); err != nil {
		return nil, fmt.Errorf("failed to count scenarios by status: %w", err)
	}
	if stats.ScenariosByPriority, err = s.scenarios.CountByColumn(ctx, "priority", filters); err != nil {
		return nil, fmt.Errorf("failed to count scenarios by priority: %w", err)
	}
	if stats.ScenariosByData, err = s.scenarios.CountByColumn(ctx, "data_status", filters); err != nil {
		return nil, fmt.Errorf("failed to count scenarios by data status: %w", err)
	}
	if stats.TotalActionItems, err = s.actionItems.Count(ctx, filters); err != nil {
		return nil, fmt.Errorf("failed to count action items: %w", err)
	}
	if stats.ActionItemsByStatus, err = s.actionItems.CountByColumn(ctx, "status", filters); err != nil {
		return nil, fmt.Errorf("failed to count action items by status: %w", err)
	}
	if stats.TotalTimelineEvents, err = s.events.Count(ctx, filters); err != nil {
		return nil, fmt.Errorf("failed to count timeline events: %w", err)
	}

	return stats, nil
}
