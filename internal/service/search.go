package service

import (
	"context"
	"strings"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/repository"
)

const searchLimit = 20

// SearchService runs a case-insensitive title/description search across
// all three collections
type SearchService struct {
	scenarios   repository.Repository[models.Scenario]
	actionItems repository.ActionItemRepositoryInterface
	events      repository.Repository[models.TimelineEvent]
}

// NewSearchService creates a new search service
func NewSearchService(scenarios repository.Repository[models.Scenario], actionItems repository.ActionItemRepositoryInterface, events repository.Repository[models.TimelineEvent]) *SearchService {
	return &SearchService{
		scenarios:   scenarios,
		actionItems: actionItems,
		events:      events,
	}
}

// SearchResults groups matches by collection
type SearchResults struct {
	Query          string                 `json:"query"`
	Scenarios      []models.Scenario      `json:"scenarios"`
	ActionItems    []models.ActionItem    `json:"action_items"`
	TimelineEvents []models.TimelineEvent `json:"timeline_events"`
}

// Search queries all three collections. Results are uncached: search is
// always served from the store.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResults, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrEmptySearchQuery
	}

	results := &SearchResults{Query: query}
	var err error

	if results.Scenarios, err = s.scenarios.Search(ctx, query, searchLimit); err != nil {
		return nil, apperrors.NewRemoteCallError("search scenarios", err)
	}
	if results.ActionItems, err = s.actionItems.Search(ctx, query, searchLimit); err != nil {
		return nil, apperrors.NewRemoteCallError("search action items", err)
	}
	if results.TimelineEvents, err = s.events.Search(ctx, query, searchLimit); err != nil {
		return nil, apperrors.NewRemoteCallError("search timeline events", err)
	}

	return results, nil
}
