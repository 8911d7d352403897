package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimelineEvent represents a dated program event. Events carry no
// updated_at and no soft-delete: they are created, edited in place,
// or removed.
type TimelineEvent struct {
	ID          uuid.UUID          `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string             `json:"title" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Description *string            `json:"description" gorm:"size:300" validate:"omitempty,max=300"`
	EventDate   time.Time          `json:"event_date" gorm:"type:date;not null;index" validate:"required"`
	EventType   *TimelineEventType `json:"event_type" gorm:"type:varchar(50)"`
	Project     *Project           `json:"project" gorm:"type:varchar(50);index"`
	UserID      *string            `json:"user_id" gorm:"size:64;index"`
	CreatedAt   time.Time          `json:"created_at"`
}

// BeforeCreate sets the UUID if not already set
func (e *TimelineEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// GetID returns the record identifier
func (e TimelineEvent) GetID() uuid.UUID {
	return e.ID
}

// TableName returns the table name for TimelineEvent
func (TimelineEvent) TableName() string {
	return "timeline_events"
}
