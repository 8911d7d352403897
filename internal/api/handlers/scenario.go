package handlers

import (
	"net/http"

	"github.com/adrianstier/rse-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles HTTP requests for restoration scenarios
type ScenarioHandler struct {
	scenarioService *service.ScenarioService
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(scenarioService *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{
		scenarioService: scenarioService,
	}
}

// ListScenarios handles GET /scenarios
// @Summary List scenarios
// @Description Get scenarios ordered by creation date, newest first, optionally filtered by project and status
// @Tags scenarios
// @Accept json
// @Produce json
// @Param project query string false "Filter by project" Enums(mote, fundemar)
// @Param status query string false "Filter by status" Enums(planning, active, completed, on_hold)
// @Success 200 {array} models.Scenario "Successfully retrieved scenarios"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scenarios [get]
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	scenarios, err := h.scenarioService.ListScenarios(c.Request.Context(), service.ScenarioFilters{
		Project: c.Query("project"),
		Status:  c.Query("status"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scenarios)
}

// GetScenario handles GET /scenarios/:id
// @Summary Get a scenario
// @Description Get a single scenario by its id
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} models.Scenario "Successfully retrieved scenario"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Scenario not found"
// @Security BearerAuth
// @Router /scenarios/{id} [get]
func (h *ScenarioHandler) GetScenario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	scenario, err := h.scenarioService.GetScenario(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scenario)
}

// CreateScenario handles POST /scenarios
// @Summary Create a scenario
// @Description Create a new restoration scenario
// @Tags scenarios
// @Accept json
// @Produce json
// @Param scenario body service.CreateScenarioRequest true "Scenario data"
// @Success 201 {object} models.Scenario "Scenario created"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scenarios [post]
func (h *ScenarioHandler) CreateScenario(c *gin.Context) {
	var req service.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	scenario, err := h.scenarioService.CreateScenario(c.Request.Context(), &req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, scenario)
}

// UpdateScenario handles PATCH /scenarios/:id
// @Summary Update a scenario
// @Description Apply a partial update to a scenario; omitted fields are left unchanged
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param scenario body service.UpdateScenarioRequest true "Fields to update"
// @Success 200 {object} models.Scenario "Scenario updated"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Scenario not found"
// @Security BearerAuth
// @Router /scenarios/{id} [patch]
func (h *ScenarioHandler) UpdateScenario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	scenario, err := h.scenarioService.UpdateScenario(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, scenario)
}

// DeleteScenario handles DELETE /scenarios/:id
// @Summary Delete a scenario
// @Description Delete a scenario. Action items referencing it keep their reference.
// @Tags scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 204 "Scenario deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /scenarios/{id} [delete]
func (h *ScenarioHandler) DeleteScenario(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.scenarioService.DeleteScenario(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
