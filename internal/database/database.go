package database

import (
	"fmt"
	"time"

	"github.com/adrianstier/rse-tracker/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// ChangeChannels maps each collection's table name to the LISTEN/NOTIFY
// channel its change trigger publishes on.
var ChangeChannels = map[string]string{
	"scenarios":       "scenarios_changes",
	"action_items":    "action_items_changes",
	"timeline_events": "timeline_events_changes",
}

// Initialize opens a Postgres connection, creates the schema from GORM models
// and installs the change-notification triggers the realtime bridge listens on.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB. scenario_id on action_items is a weak reference that may
	// dangle, so no foreign key constraints are created.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(opts.LogLevel),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	all := []interface{}{
		&models.Scenario{},
		&models.ActionItem{},
		&models.TimelineEvent{},
	}
	if err := db.AutoMigrate(all...); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	if err := installChangeTriggers(db); err != nil {
		return nil, fmt.Errorf("install change triggers: %w", err)
	}

	return db, nil
}

// installChangeTriggers creates the trigger function and per-table triggers
// that publish {event, old, new} JSON on each collection's channel. The
// payload mirrors what the realtime bridge decodes.
func installChangeTriggers(db *gorm.DB) error {
	fn := `
CREATE OR REPLACE FUNCTION rse_notify_change() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify(
		TG_TABLE_NAME || '_changes',
		json_build_object(
			'event', TG_OP,
			'old', CASE WHEN TG_OP IN ('UPDATE', 'DELETE') THEN row_to_json(OLD) END,
			'new', CASE WHEN TG_OP IN ('INSERT', 'UPDATE') THEN row_to_json(NEW) END
		)::text
	);
	RETURN COALESCE(NEW, OLD);
END;
$$ LANGUAGE plpgsql`
	if err := db.Exec(fn).Error; err != nil {
		return err
	}

	for table := range ChangeChannels {
		drop := fmt.Sprintf(`DROP TRIGGER IF EXISTS %s_notify ON %s`, table, table)
		if err := db.Exec(drop).Error; err != nil {
			return err
		}
		create := fmt.Sprintf(
			`CREATE TRIGGER %s_notify AFTER INSERT OR UPDATE OR DELETE ON %s FOR EACH ROW EXECUTE FUNCTION rse_notify_change()`,
			table, table,
		)
		if err := db.Exec(create).Error; err != nil {
			return err
		}
	}
	return nil
}
