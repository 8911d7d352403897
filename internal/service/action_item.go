package service

import (
	"context"
	"time"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/repository"
	syncpkg "github.com/adrianstier/rse-tracker/internal/sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// KindActionItemsWithScenarios is the cache kind for the derived
// scenario-resolved action item listing. It is invalidated whenever
// action items or scenarios change.
const KindActionItemsWithScenarios = "action_items_with_scenarios"

// ActionItemService handles business logic for action items
type ActionItemService struct {
	engine    *syncpkg.Engine[models.ActionItem]
	repo      repository.ActionItemRepositoryInterface
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewActionItemService creates a new action item service
func NewActionItemService(engine *syncpkg.Engine[models.ActionItem], repo repository.ActionItemRepositoryInterface, qc *cache.QueryCache, validator *validator.Validate) *ActionItemService {
	return &ActionItemService{
		engine:    engine,
		repo:      repo,
		cache:     qc,
		validator: validator,
	}
}

// CreateActionItemRequest represents the data needed to create an action item
type CreateActionItemRequest struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=300"`
	ScenarioID  *uuid.UUID `json:"scenario_id"`
	Owner       *string    `json:"owner" validate:"omitempty,max=100"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress done blocked"`
	DueDate     *time.Time `json:"due_date"`
	Project     *string    `json:"project" validate:"omitempty,oneof=mote fundemar"`
}

// UpdateActionItemRequest represents a partial action item update
type UpdateActionItemRequest struct {
	Title       *string    `json:"title" validate:"omitempty,max=100"`
	Description *string    `json:"description" validate:"omitempty,max=300"`
	ScenarioID  *uuid.UUID `json:"scenario_id"`
	Owner       *string    `json:"owner" validate:"omitempty,max=100"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo in_progress done blocked"`
	DueDate     *time.Time `json:"due_date"`
	Project     *string    `json:"project" validate:"omitempty,oneof=mote fundemar"`
}

// ActionItemFilters narrows action item reads
type ActionItemFilters struct {
	Status     string
	Owner      string
	ScenarioID string
	Project    string
}

func (f ActionItemFilters) toMap() map[string]interface{} {
	filters := map[string]interface{}{}
	if f.Status != "" {
		filters["status"] = f.Status
	}
	if f.Owner != "" {
		filters["owner"] = f.Owner
	}
	if f.ScenarioID != "" {
		filters["scenario_id"] = f.ScenarioID
	}
	if f.Project != "" {
		filters["project"] = f.Project
	}
	return filters
}

// ListActionItems retrieves action items, newest first
func (s *ActionItemService) ListActionItems(ctx context.Context, filters ActionItemFilters) ([]models.ActionItem, error) {
	return s.engine.List(ctx, filters.toMap())
}

// ListActionItemsWithScenarios retrieves action items with their
// referenced scenario resolved. Cached under its own kind so scenario
// changes can invalidate it independently of the plain listing.
func (s *ActionItemService) ListActionItemsWithScenarios(ctx context.Context, filters ActionItemFilters) ([]models.ActionItem, error) {
	filterMap := filters.toMap()
	key := cache.ListKey(KindActionItemsWithScenarios, filterMap)
	if value, state := s.cache.Read(key); state == cache.Fresh {
		return value.([]models.ActionItem), nil
	}

	rows, err := s.repo.ListWithScenarios(ctx, filterMap)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, apperrors.NewRemoteCallError("fetch action items with scenarios", err)
	}

	s.cache.WriteList(key, filterMap, rows)
	return rows, nil
}

// GetActionItem retrieves an action item by ID
func (s *ActionItemService) GetActionItem(ctx context.Context, id uuid.UUID) (*models.ActionItem, error) {
	return s.engine.Get(ctx, id)
}

// CreateActionItem validates and creates a new action item
func (s *ActionItemService) CreateActionItem(ctx context.Context, req *CreateActionItemRequest, userID *string) (*models.ActionItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	item := models.ActionItem{
		Title:       req.Title,
		Description: req.Description,
		ScenarioID:  req.ScenarioID,
		Owner:       req.Owner,
		Status:      models.ActionItemStatusTodo,
		DueDate:     req.DueDate,
		UserID:      userID,
	}
	if req.Status != nil {
		item.Status = models.ActionItemStatus(*req.Status)
	}
	if req.Project != nil {
		project := models.Project(*req.Project)
		item.Project = &project
	}

	created, err := s.engine.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(KindActionItemsWithScenarios)
	return created, nil
}

// UpdateActionItem validates and applies a partial update
func (s *ActionItemService) UpdateActionItem(ctx context.Context, id uuid.UUID, req *UpdateActionItemRequest) (*models.ActionItem, error) {
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
	if req.ScenarioID != nil {
		changes["scenario_id"] = *req.ScenarioID
	}
	if req.Owner != nil {
		changes["owner"] = *req.Owner
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if req.DueDate != nil {
		changes["due_date"] = *req.DueDate
	}
	if req.Project != nil {
		changes["project"] = *req.Project
	}
	if len(changes) == 0 {
		return s.engine.Get(ctx, id)
	}

	updated, err := s.engine.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(KindActionItemsWithScenarios)
	return updated, nil
}

// DeleteActionItem removes an action item
func (s *ActionItemService) DeleteActionItem(ctx context.Context, id uuid.UUID) error {
	if _, err := s.engine.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(KindActionItemsWithScenarios)
	return nil
}
