package handlers

import (
	"net/http"

	"github.com/adrianstier/rse-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles HTTP requests for global search
type SearchHandler struct {
	searchService *service.SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
	}
}

// Search handles GET /search
// @Summary Global search
// @Description Case-insensitive search over titles and descriptions of all three collections
// @Tags search
// @Accept json
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} service.SearchResults "Grouped search results"
// @Failure 400 {object} ErrorResponse "Empty search query"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /search [get]
func (h *SearchHandler) Search(c *gin.Context) {
	results, err := h.searchService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
