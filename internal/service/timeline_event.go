package service

import (
	"context"
	"time"

	"github.com/adrianstier/rse-tracker/internal/database/models"
	syncpkg "github.com/adrianstier/rse-tracker/internal/sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// TimelineEventService handles business logic for timeline events
type TimelineEventService struct {
	engine    *syncpkg.Engine[models.TimelineEvent]
	validator *validator.Validate
}

// NewTimelineEventService creates a new timeline event service
func NewTimelineEventService(engine *syncpkg.Engine[models.TimelineEvent], validator *validator.Validate) *TimelineEventService {
	return &TimelineEventService{
		engine:    engine,
		validator: validator,
	}
}

// CreateTimelineEventRequest represents the data needed to create a timeline event
type CreateTimelineEventRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=300"`
	EventDate   *time.Time `json:"event_date" validate:"required"`
	EventType   *string    `json:"event_type" validate:"omitempty,oneof=milestone deadline meeting deliverable"`
	Project     *string    `json:"project" validate:"omitempty,oneof=mote fundemar"`
}

// UpdateTimelineEventRequest represents a partial timeline event update
type UpdateTimelineEventRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=300"`
	EventDate   *time.Time `json:"event_date"`
	EventType   *string    `json:"event_type" validate:"omitempty,oneof=milestone deadline meeting deliverable"`
	Project     *string    `json:"project" validate:"omitempty,oneof=mote fundemar"`
}

// TimelineEventFilters narrows timeline event reads
type TimelineEventFilters struct {
	Project string
}

func (f TimelineEventFilters) toMap() map[string]interface{} {
	filters := map[string]interface{}{}
	if f.Project != "" {
		filters["project"] = f.Project
	}
	return filters
}

// ListTimelineEvents retrieves timeline events in chronological order
func (s *TimelineEventService) ListTimelineEvents(ctx context.Context, filters TimelineEventFilters) ([]models.TimelineEvent, error) {
	return s.engine.List(ctx, filters.toMap())
}

// GetTimelineEvent retrieves a timeline event by ID
func (s *TimelineEventService) GetTimelineEvent(ctx context.Context, id uuid.UUID) (*models.TimelineEvent, error) {
	return s.engine.Get(ctx, id)
}

// CreateTimelineEvent validates and creates a new timeline event
func (s *TimelineEventService) CreateTimelineEvent(ctx context.Context, req *CreateTimelineEventRequest, userID *string) (*models.TimelineEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	event := models.TimelineEvent{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   *req.EventDate,
		UserID:      userID,
	}
	if req.EventType != nil {
		eventType := models.TimelineEventType(*req.EventType)
		event.EventType = &eventType
	}
	if req.Project != nil {
		project := models.Project(*req.Project)
		event.Project = &project
	}

	return s.engine.Create(ctx, event)
}

// UpdateTimelineEvent validates and applies a partial update
func (s *TimelineEventService) UpdateTimelineEvent(ctx context.Context, id uuid.UUID, req *UpdateTimelineEventRequest) (*models.TimelineEvent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	changes := map[string]interface{}{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.EventDate != nil {
		changes["event_date"] = *req.EventDate
	}
	if req.EventType != nil {
		changes["event_type"] = *req.EventType
	}
	if req.Project != nil {
		changes["project"] = *req.Project
	}
	if len(changes) == 0 {
		return s.engine.Get(ctx, id)
	}

	return s.engine.Update(ctx, id, changes)
}

// DeleteTimelineEvent removes a timeline event
func (s *TimelineEventService) DeleteTimelineEvent(ctx context.Context, id uuid.UUID) error {
	_, err := s.engine.Delete(ctx, id)
	return err
}
