package routes

import (
	"github.com/adrianstier/rse-tracker/internal/api/handlers"
	"github.com/adrianstier/rse-tracker/internal/api/middleware"
	"github.com/adrianstier/rse-tracker/internal/auth"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/config"
	"github.com/adrianstier/rse-tracker/internal/database/models"
	"github.com/adrianstier/rse-tracker/internal/notify"
	"github.com/adrianstier/rse-tracker/internal/repository"
	"github.com/adrianstier/rse-tracker/internal/service"
	syncpkg "github.com/adrianstier/rse-tracker/internal/sync"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The query
// cache and notification hub are shared with the realtime bridges, so
// they are created by the caller.
func SetupRoutes(db *gorm.DB, cfg *config.Config, qc *cache.QueryCache, hub *notify.Hub) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	scenarioRepo := repository.NewScenarioRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	timelineEventRepo := repository.NewTimelineEventRepository(db)

	// Initialize per-collection engines over the shared cache
	scenarioEngine := syncpkg.NewEngine[models.Scenario](repository.ScenarioDescriptor, scenarioRepo, qc, hub)
	actionItemEngine := syncpkg.NewEngine[models.ActionItem](repository.ActionItemDescriptor, actionItemRepo, qc, hub)
	timelineEventEngine := syncpkg.NewEngine[models.TimelineEvent](repository.TimelineEventDescriptor, timelineEventRepo, qc, hub)

	// Initialize services
	scenarioService := service.NewScenarioService(scenarioEngine, qc, validator)
	actionItemService := service.NewActionItemService(actionItemEngine, actionItemRepo, qc, validator)
	timelineEventService := service.NewTimelineEventService(timelineEventEngine, validator)
	dashboardService := service.NewDashboardService(scenarioRepo, actionItemRepo, timelineEventRepo)
	searchService := service.NewSearchService(scenarioRepo, actionItemRepo, timelineEventRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	scenarioHandler := handlers.NewScenarioHandler(scenarioService)
	actionItemHandler := handlers.NewActionItemHandler(actionItemService)
	timelineEventHandler := handlers.NewTimelineEventHandler(timelineEventService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	searchHandler := handlers.NewSearchHandler(searchService)
	eventsHandler := handlers.NewEventsHandler(hub)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())
	{
		scenarios := api.Group("/scenarios")
		{
			scenarios.GET("", scenarioHandler.ListScenarios)
			scenarios.GET("/:id", scenarioHandler.GetScenario)
			scenarios.POST("", scenarioHandler.CreateScenario)
			scenarios.PATCH("/:id", scenarioHandler.UpdateScenario)
			scenarios.DELETE("/:id", scenarioHandler.DeleteScenario)
		}

		actionItems := api.Group("/action-items")
		{
			actionItems.GET("", actionItemHandler.ListActionItems)
			actionItems.GET("/with-scenarios", actionItemHandler.ListActionItemsWithScenarios)
			actionItems.GET("/:id", actionItemHandler.GetActionItem)
			actionItems.POST("", actionItemHandler.CreateActionItem)
			actionItems.PATCH("/:id", actionItemHandler.UpdateActionItem)
			actionItems.DELETE("/:id", actionItemHandler.DeleteActionItem)
		}

		timelineEvents := api.Group("/timeline-events")
		{
			timelineEvents.GET("", timelineEventHandler.ListTimelineEvents)
			timelineEvents.GET("/:id", timelineEventHandler.GetTimelineEvent)
			timelineEvents.POST("", timelineEventHandler.CreateTimelineEvent)
			timelineEvents.PATCH("/:id", timelineEventHandler.UpdateTimelineEvent)
			timelineEvents.DELETE("/:id", timelineEventHandler.DeleteTimelineEvent)
		}

		api.GET("/dashboard/stats", dashboardHandler.GetStats)
		api.GET("/search", searchHandler.Search)
		api.GET("/notifications", eventsHandler.Recent)
		api.GET("/notifications/stream", eventsHandler.Stream)
	}

	return router
}
