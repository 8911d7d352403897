package handlers

import (
	"net/http"

	"github.com/adrianstier/rse-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ActionItemHandler handles HTTP requests for action items
type ActionItemHandler struct {
	actionItemService *service.ActionItemService
}

// NewActionItemHandler creates a new action item handler
func NewActionItemHandler(actionItemService *service.ActionItemService) *ActionItemHandler {
	return &ActionItemHandler{
		actionItemService: actionItemService,
	}
}

func actionItemFilters(c *gin.Context) service.ActionItemFilters {
	return service.ActionItemFilters{
		Status:     c.Query("status"),
		Owner:      c.Query("owner"),
		ScenarioID: c.Query("scenario_id"),
		Project:    c.Query("project"),
	}
}

// ListActionItems handles GET /action-items
// @Summary List action items
// @Description Get action items ordered by creation date, newest first, optionally filtered
// @Tags action-items
// @Accept json
// @Produce json
// @Param status query string false "Filter by status" Enums(todo, in_progress, done, blocked)
// @Param owner query string false "Filter by owner"
// @Param scenario_id query string false "Filter by scenario id"
// @Param project query string false "Filter by project" Enums(mote, fundemar)
// @Success 200 {array} models.ActionItem "Successfully retrieved action items"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /action-items [get]
func (h *ActionItemHandler) ListActionItems(c *gin.Context) {
	items, err := h.actionItemService.ListActionItems(c.Request.Context(), actionItemFilters(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// ListActionItemsWithScenarios handles GET /action-items/with-scenarios
// @Summary List action items with scenarios
// @Description Get action items with their referenced scenario resolved inline; dangling references resolve to null
// @Tags action-items
// @Accept json
// @Produce json
// @Param status query string false "Filter by status" Enums(todo, in_progress, done, blocked)
// @Param owner query string false "Filter by owner"
// @Param scenario_id query string false "Filter by scenario id"
// @Param project query string false "Filter by project" Enums(mote, fundemar)
// @Success 200 {array} models.ActionItem "Successfully retrieved action items"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /action-items/with-scenarios [get]
func (h *ActionItemHandler) ListActionItemsWithScenarios(c *gin.Context) {
	items, err := h.actionItemService.ListActionItemsWithScenarios(c.Request.Context(), actionItemFilters(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetActionItem handles GET /action-items/:id
// @Summary Get an action item
// @Description Get a single action item by its id
// @Tags action-items
// @Accept json
// @Produce json
// @Param id path string true "Action item ID"
// @Success 200 {object} models.ActionItem "Successfully retrieved action item"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Action item not found"
// @Security BearerAuth
// @Router /action-items/{id} [get]
func (h *ActionItemHandler) GetActionItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.actionItemService.GetActionItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateActionItem handles POST /action-items
// @Summary Create an action item
// @Description Create a new action item, optionally referencing a scenario
// @Tags action-items
// @Accept json
// @Produce json
// @Param action_item body service.CreateActionItemRequest true "Action item data"
// @Success 201 {object} models.ActionItem "Action item created"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /action-items [post]
func (h *ActionItemHandler) CreateActionItem(c *gin.Context) {
	var req service.CreateActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.actionItemService.CreateActionItem(c.Request.Context(), &req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateActionItem handles PATCH /action-items/:id
// @Summary Update an action item
// @Description Apply a partial update to an action item; omitted fields are left unchanged
// @Tags action-items
// @Accept json
// @Produce json
// @Param id path string true "Action item ID"
// @Param action_item body service.UpdateActionItemRequest true "Fields to update"
// @Success 200 {object} models.ActionItem "Action item updated"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Action item not found"
// @Security BearerAuth
// @Router /action-items/{id} [patch]
func (h *ActionItemHandler) UpdateActionItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateActionItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	item, err := h.actionItemService.UpdateActionItem(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteActionItem handles DELETE /action-items/:id
// @Summary Delete an action item
// @Description Delete an action item
// @Tags action-items
// @Accept json
// @Produce json
// @Param id path string true "Action item ID"
// @Success 204 "Action item deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /action-items/{id} [delete]
func (h *ActionItemHandler) DeleteActionItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.actionItemService.DeleteActionItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
