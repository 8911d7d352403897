package handlers

import (
	"net/http"

	"github.com/adrianstier/rse-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// TimelineEventHandler handles HTTP requests for timeline events
type TimelineEventHandler struct {
	timelineEventService *service.TimelineEventService
}

// NewTimelineEventHandler creates a new timeline event handler
func NewTimelineEventHandler(timelineEventService *service.TimelineEventService) *TimelineEventHandler {
	return &TimelineEventHandler{
		timelineEventService: timelineEventService,
	}
}

// ListTimelineEvents handles GET /timeline-events
// @Summary List timeline events
// @Description Get timeline events in chronological order, optionally filtered by project
// @Tags timeline-events
// @Accept json
// @Produce json
// @Param project query string false "Filter by project" Enums(mote, fundemar)
// @Success 200 {array} models.TimelineEvent "Successfully retrieved timeline events"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /timeline-events [get]
func (h *TimelineEventHandler) ListTimelineEvents(c *gin.Context) {
	events, err := h.timelineEventService.ListTimelineEvents(c.Request.Context(), service.TimelineEventFilters{
		Project: c.Query("project"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetTimelineEvent handles GET /timeline-events/:id
// @Summary Get a timeline event
// @Description Get a single timeline event by its id
// @Tags timeline-events
// @Accept json
// @Produce json
// @Param id path string true "Timeline event ID"
// @Success 200 {object} models.TimelineEvent "Successfully retrieved timeline event"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 404 {object} ErrorResponse "Timeline event not found"
// @Security BearerAuth
// @Router /timeline-events/{id} [get]
func (h *TimelineEventHandler) GetTimelineEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.timelineEventService.GetTimelineEvent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// CreateTimelineEvent handles POST /timeline-events
// @Summary Create a timeline event
// @Description Create a new timeline event
// @Tags timeline-events
// @Accept json
// @Produce json
// @Param timeline_event body service.CreateTimelineEventRequest true "Timeline event data"
// @Success 201 {object} models.TimelineEvent "Timeline event created"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /timeline-events [post]
func (h *TimelineEventHandler) CreateTimelineEvent(c *gin.Context) {
	var req service.CreateTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.timelineEventService.CreateTimelineEvent(c.Request.Context(), &req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// UpdateTimelineEvent handles PATCH /timeline-events/:id
// @Summary Update a timeline event
// @Description Apply a partial update to a timeline event; omitted fields are left unchanged
// @Tags timeline-events
// @Accept json
// @Produce json
// @Param id path string true "Timeline event ID"
// @Param timeline_event body service.UpdateTimelineEventRequest true "Fields to update"
// @Success 200 {object} models.TimelineEvent "Timeline event updated"
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 404 {object} ErrorResponse "Timeline event not found"
// @Security BearerAuth
// @Router /timeline-events/{id} [patch]
func (h *TimelineEventHandler) UpdateTimelineEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.UpdateTimelineEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.timelineEventService.UpdateTimelineEvent(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteTimelineEvent handles DELETE /timeline-events/:id
// @Summary Delete a timeline event
// @Description Delete a timeline event
// @Tags timeline-events
// @Accept json
// @Produce json
// @Param id path string true "Timeline event ID"
// @Success 204 "Timeline event deleted"
// @Failure 400 {object} ErrorResponse "Invalid id"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /timeline-events/{id} [delete]
func (h *TimelineEventHandler) DeleteTimelineEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.timelineEventService.DeleteTimelineEvent(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
