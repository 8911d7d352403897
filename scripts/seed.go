package main

import (
	"fmt"
	"log"
	"time"

	"github.com/adrianstier/rse-tracker/internal/config"
	"github.com/adrianstier/rse-tracker/internal/database"
	"github.com/adrianstier/rse-tracker/internal/database/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the three collections with a small, realistic data set for local
// development. Safe to run repeatedly: it skips seeding when scenarios
// already exist.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var existing int64
	if err := db.Model(&models.Scenario{}).Count(&existing).Error; err != nil {
		log.Fatalf("Failed to check existing data: %v", err)
	}
	if existing > 0 {
		log.Printf("Database already has %d scenarios, skipping seed", existing)
		return
	}

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seed data loaded")
}

func strPtr(s string) *string { return &s }

func projectPtr(p models.Project) *models.Project { return &p }

func eventTypePtr(t models.TimelineEventType) *models.TimelineEventType { return &t }

func seed(db *gorm.DB) error {
	scenarios := []models.Scenario{
		{
			Title:       "Staghorn nursery expansion",
			Description: strPtr("Expand the offshore staghorn nursery by 40 trees ahead of summer outplanting"),
			Project:     models.ProjectMote,
			Status:      models.ScenarioStatusActive,
			Priority:    models.ScenarioPriorityHigh,
			DataStatus:  models.DataStatusPartial,
		},
		{
			Title:       "Bleaching response plan",
			Description: strPtr("Contingency moves for nursery stock during thermal stress events"),
			Project:     models.ProjectMote,
			Status:      models.ScenarioStatusPlanning,
			Priority:    models.ScenarioPriorityCritical,
			DataStatus:  models.DataStatusPending,
		},
		{
			Title:       "Bayahibe outplanting season",
			Description: strPtr("Coordinate volunteer dive teams for the spring outplanting window"),
			Project:     models.ProjectFundemar,
			Status:      models.ScenarioStatusActive,
			Priority:    models.ScenarioPriorityMedium,
			DataStatus:  models.DataStatusReady,
		},
		{
			Title:      "Genotype performance review",
			Project:    models.ProjectFundemar,
			Status:     models.ScenarioStatusCompleted,
			Priority:   models.ScenarioPriorityLow,
			DataStatus: models.DataStatusReady,
		},
	}
	if err := db.Create(&scenarios).Error; err != nil {
		return fmt.Errorf("seed scenarios: %w", err)
	}

	due := time.Now().AddDate(0, 0, 14)
	actionItems := []models.ActionItem{
		{
			Title:      "Order fragment tags",
			ScenarioID: &scenarios[0].ID,
			Owner:      strPtr("Maya"),
			Status:     models.ActionItemStatusInProgress,
			DueDate:    &due,
			Project:    projectPtr(models.ProjectMote),
		},
		{
			Title:       "Draft temperature trigger thresholds",
			Description: strPtr("Agree on the DHW thresholds that trigger nursery moves"),
			ScenarioID:  &scenarios[1].ID,
			Owner:       strPtr("Tom"),
			Status:      models.ActionItemStatusTodo,
			Project:     projectPtr(models.ProjectMote),
		},
		{
			Title:      "Confirm boat schedule with dive shop",
			ScenarioID: &scenarios[2].ID,
			Owner:      strPtr("Lucia"),
			Status:     models.ActionItemStatusBlocked,
			Project:    projectPtr(models.ProjectFundemar),
		},
		{
			Title:   "Archive 2024 survey photos",
			Status:  models.ActionItemStatusDone,
			Project: projectPtr(models.ProjectFundemar),
		},
	}
	if err := db.Create(&actionItems).Error; err != nil {
		return fmt.Errorf("seed action items: %w", err)
	}

	events := []models.TimelineEvent{
		{
			Title:     "Spring outplanting window opens",
			EventDate: time.Now().AddDate(0, 1, 0),
			EventType: eventTypePtr(models.TimelineEventTypeMilestone),
			Project:   projectPtr(models.ProjectFundemar),
		},
		{
			Title:     "Quarterly partner sync",
			EventDate: time.Now().AddDate(0, 0, 10),
			EventType: eventTypePtr(models.TimelineEventTypeMeeting),
		},
		{
			Title:       "Grant report due",
			Description: strPtr("Annual restoration metrics report for the funding agency"),
			EventDate:   time.Now().AddDate(0, 2, 0),
			EventType:   eventTypePtr(models.TimelineEventTypeDeadline),
			Project:     projectPtr(models.ProjectMote),
		},
	}
	if err := db.Create(&events).Error; err != nil {
		return fmt.Errorf("seed timeline events: %w", err)
	}

	return nil
}
