package handlers

import (
	"net/http"

	"github.com/adrianstier/rse-tracker/internal/notify"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams mutation notifications to dashboard clients
type EventsHandler struct {
	hub *notify.Hub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *notify.Hub) *EventsHandler {
	return &EventsHandler{
		hub: hub,
	}
}

// Stream handles GET /notifications/stream using Server-Sent Events.
// The recent notification backlog is replayed first so a reconnecting
// client doesn't miss toasts published while it was away.
// @Summary Notification stream
// @Description Stream mutation notifications as Server-Sent Events
// @Tags notifications
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream of notifications"
// @Security BearerAuth
// @Router /notifications/stream [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Streaming not supported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	events, cancel := h.hub.Subscribe()
	defer cancel()

	for _, notification := range h.hub.Recent() {
		c.SSEvent("notification", notification)
	}
	flusher.Flush()

	for {
		select {
		case notification, open := <-events:
			if !open {
				return
			}
			c.SSEvent("notification", notification)
			flusher.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

// Recent handles GET /notifications
// @Summary Recent notifications
// @Description Get the bounded list of recent mutation notifications, oldest first
// @Tags notifications
// @Accept json
// @Produce json
// @Success 200 {array} notify.Notification "Recent notifications"
// @Security BearerAuth
// @Router /notifications [get]
func (h *EventsHandler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, h.hub.Recent())
}
