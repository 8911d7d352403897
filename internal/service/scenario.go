package service

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	syncpkg "github.com/adrianstier/rse-tracker/internal/sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ScenarioService handles business logic for restoration scenarios
type ScenarioService struct {
	engine    *syncpkg.Engine[models.Scenario]
	cache     *cache.QueryCache
	validator *validator.Validate
}

// NewScenarioService creates a new scenario service
func NewScenarioService(engine *syncpkg.Engine[models.Scenario], qc *cache.QueryCache, validator *validator.Validate) *ScenarioService {
	return &ScenarioService{
		engine:    engine,
		cache:     qc,
		validator: validator,
	}
}

// CreateScenarioRequest represents the data needed to create a scenario
type CreateScenarioRequest struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Project     string  `json:"project" validate:"required,oneof=mote fundemar"`
	Status      *string `json:"status" validate:"omitempty,oneof=planning active completed on_hold"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	DataStatus  *string `json:"data_status" validate:"omitempty,oneof=data-ready data-partial data-pending"`
}

// UpdateScenarioRequest represents a partial scenario update; nil fields
// are left untouched
type UpdateScenarioRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Project     *string `json:"project" validate:"omitempty,oneof=mote fundemar"`
	Status      *string `json:"status" validate:"omitempty,oneof=planning active completed on_hold"`
	Priority    *string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	DataStatus  *string `json:"data_status" validate:"omitempty,oneof=data-ready data-partial data-pending"`
}

// ScenarioFilters narrows scenario reads
type ScenarioFilters struct {
	Project string
	Status  string
}

func (f ScenarioFilters) toMap() map[string]interface{} {
	filters := map[string]interface{}{}
	if f.Project != "" {
		filters["project"] = f.Project
	}
	if f.Status != "" {
		filters["status"] = f.Status
	}
	return filters
}

// ListScenarios retrieves scenarios, newest first
func (s *ScenarioService) ListScenarios(ctx context.Context, filters ScenarioFilters) ([]models.Scenario, error) {
	return s.engine.List(ctx, filters.toMap())
}

// GetScenario retrieves a scenario by ID
func (s *ScenarioService) GetScenario(ctx context.Context, id uuid.UUID) (*models.Scenario, error) {
	return s.engine.Get(ctx, id)
}

// CreateScenario validates and creates a new scenario
func (s *ScenarioService) CreateScenario(ctx context.Context, req *CreateScenarioRequest, userID *string) (*models.Scenario, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, asValidationError(err)
	}

	scenario := models.Scenario{
		Title:       req.Title,
		Description: req.Description,
		Project:     models.Project(req.Project),
		Status:      models.ScenarioStatusPlanning,
		Priority:    models.ScenarioPriorityMedium,
		DataStatus:  models.DataStatusPending,
		UserID:      userID,
	}
	if req.Status != nil {
		scenario.Status = models.ScenarioStatus(*req.Status)
	}
	if req.Priority != nil {
		scenario.Priority = models.ScenarioPriority(*req.Priority)
	}
	if req.DataStatus != nil {
		scenario.DataStatus = models.DataStatus(*req.DataStatus)
	}

	return s.engine.Create(ctx, scenario)
}

// UpdateScenario validates and applies a partial update. An update with
// no fields set is a plain read.
func (s *ScenarioService) UpdateScenario(ctx context.Context, id uuid.UUID, req *UpdateScenarioRequest) (*models.Scenario, error) {
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
	if req.Project != nil {
		changes["project"] = *req.Project
	}
	if req.Status != nil {
		changes["status"] = *req.Status
	}
	if req.Priority != nil {
		changes["priority"] = *req.Priority
	}
	if req.DataStatus != nil {
		changes["data_status"] = *req.DataStatus
	}
	if len(changes) == 0 {
		return s.engine.Get(ctx, id)
	}

	updated, err := s.engine.Update(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	// the scenario-resolved action item listing embeds scenario rows
	s.cache.Invalidate(KindActionItemsWithScenarios)
	return updated, nil
}

// DeleteScenario removes a scenario. Action items that referenced it
// keep their dangling reference; readers treat it as "no scenario".
func (s *ScenarioService) DeleteScenario(ctx context.Context, id uuid.UUID) error {
	if _, err := s.engine.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(KindActionItemsWithScenarios)
	return nil
}

// asValidationError converts the first failed struct validation into the
// field-level error the handlers map to a 400
func asValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return apperrors.NewValidationError(strings.ToLower(fe.Field()), "failed "+fe.Tag()+" validation")
	}
	return apperrors.NewValidationError("", err.Error())
}
