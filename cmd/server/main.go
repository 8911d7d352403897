package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/adrianstier/rse-tracker/internal/api/routes"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/config"
	"github.com/adrianstier/rse-tracker/internal/database"
	"github.com/adrianstier/rse-tracker/internal/notify"
	"github.com/adrianstier/rse-tracker/internal/realtime"
	"github.com/adrianstier/rse-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/adrianstier/rse-tracker/docs" // This is needed for swag
)

//	@title			RSE Tracker API
//	@version		1.0
//	@description	Backend API for the reef restoration tracking dashboard: scenarios, action items and timeline events with cached reads and live change invalidation.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Shared query cache and notification hub
	qc := cache.New(cfg.CacheTTL())
	hub := notify.NewHub()

	// Start the change-notification bridges
	var manager *realtime.Manager
	if cfg.RealtimeEnabled {
		manager, err = setupRealtime(cfg, qc)
		if err != nil {
			// degraded but functional: reads fall back to TTL staleness
			logrus.Warnf("Realtime invalidation disabled: %v", err)
		} else {
			manager.Start(context.Background())
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				manager.Stop(ctx)
			}()
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg, qc, hub)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

// setupRealtime opens one listening connection per collection and wires
// its change channel into the cache
func setupRealtime(cfg *config.Config, qc *cache.QueryCache) (*realtime.Manager, error) {
	ctx := context.Background()

	var bridges []*realtime.Bridge
	var sources []realtime.NotificationSource
	for table, channel := range database.ChangeChannels {
		source, err := realtime.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			for _, s := range sources {
				_ = s.Close(ctx)
			}
			return nil, err
		}
		sources = append(sources, source)

		bridge := realtime.NewBridge(table, channel, source, qc)
		if table == "action_items" || table == "scenarios" {
			// scenario-resolved listings embed rows from both tables
			bridge = bridge.WithExtraKinds(service.KindActionItemsWithScenarios)
		}
		bridges = append(bridges, bridge)
	}

	return realtime.NewManager(bridges, sources), nil
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
