// Package realtime turns database change notifications into cache
// invalidations. Each tracked table carries triggers that publish a JSON
// change event on a per-table channel; a bridge listens on one channel,
// filters events against its scope, and marks the affected cache regions
// stale so the next read refetches.
package realtime

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ChangeEvent is the payload published by the change triggers
type ChangeEvent struct {
	Event string                 `json:"event"` // INSERT, UPDATE or DELETE
	Old   map[string]interface{} `json:"old"`
	New   map[string]interface{} `json:"new"`
}

// Row returns the row the event describes: the new row when present,
// otherwise the old one (DELETE)
func (e *ChangeEvent) Row() map[string]interface{} {
	if e.New != nil {
		return e.New
	}
	return e.Old
}

// NotificationSource is the subset of a listening connection the bridge
// needs. *pgx.Conn satisfies it through ConnSource.
type NotificationSource interface {
	Listen(ctx context.Context, channel string) error
	WaitForNotification(ctx context.Context) (*pgconn.Notification, error)
	Close(ctx context.Context) error
}

// ConnSource adapts a dedicated *pgx.Conn into a NotificationSource
type ConnSource struct {
	conn *pgx.Conn
}

// Connect opens a dedicated listening connection. Listening cannot share
// the pooled GORM connections: LISTEN is session state.
func Connect(ctx context.Context, dsn string) (*ConnSource, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open listen connection: %w", err)
	}
	return &ConnSource{conn: conn}, nil
}

func (s *ConnSource) Listen(ctx context.Context, channel string) error {
	_, err := s.conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize())
	return err
}

func (s *ConnSource) WaitForNotification(ctx context.Context) (*pgconn.Notification, error) {
	return s.conn.WaitForNotification(ctx)
}

func (s *ConnSource) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// Invalidator is the cache surface the bridge drives
type Invalidator interface {
	Invalidate(kind string)
	InvalidateKey(key string)
}

// Bridge subscribes one entity kind's change channel to the cache
type Bridge struct {
	kind    string
	channel string
	source  NotificationSource

	// optional equality scope; events whose row doesn't match are ignored.
	// Filtering happens here, not in the subscription, so one channel
	// serves every scope.
	scope map[string]interface{}

	// additional cache kinds stale-marked on every accepted event, for
	// derived regions built from this kind's rows
	extraKinds []string

	cache Invalidator
	log   *logger.Logger
}

// NewBridge wires one change channel to the cache
func NewBridge(kind, channel string, source NotificationSource, inv Invalidator) *Bridge {
	return &Bridge{
		kind:    kind,
		channel: channel,
		source:  source,
		cache:   inv,
		log:     logger.New().WithField("channel", channel),
	}
}

// WithScope restricts the bridge to events whose row matches the given
// column equality filters
func (b *Bridge) WithScope(scope map[string]interface{}) *Bridge {
	b.scope = scope
	return b
}

// WithExtraKinds adds derived cache kinds invalidated alongside the
// bridge's own
func (b *Bridge) WithExtraKinds(kinds ...string) *Bridge {
	b.extraKinds = append(b.extraKinds, kinds...)
	return b
}

// Run subscribes and processes events until the context is canceled or
// the subscription fails. A failed subscription is reported, not
// retried; reads fall back to TTL staleness.
func (b *Bridge) Run(ctx context.Context) error {
	if err := b.source.Listen(ctx, b.channel); err != nil {
		return apperrors.NewSubscriptionError(b.channel, err)
	}
	b.log.Info("Subscribed to change channel")

	for {
		notification, err := b.source.WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return apperrors.NewSubscriptionError(b.channel, err)
		}
		b.handle(notification.Payload)
	}
}

func (b *Bridge) handle(payload string) {
	var event ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		b.log.WithField("error", err.Error()).Warn("Discarding malformed change event")
		return
	}

	row := event.Row()
	if !b.inScope(row) {
		return
	}

	b.cache.Invalidate(b.kind)
	for _, kind := range b.extraKinds {
		b.cache.Invalidate(kind)
	}
	if id, ok := row["id"].(string); ok && id != "" {
		b.cache.InvalidateKey(cache.ItemKey(b.kind, id))
	}

	b.log.WithFields(map[string]interface{}{
		"event": event.Event,
		"kind":  b.kind,
	}).Debug("Invalidated cache regions for change event")
}

func (b *Bridge) inScope(row map[string]interface{}) bool {
	if len(b.scope) == 0 {
		return true
	}
	if row == nil {
		// can't prove the event is out of scope, so accept it
		return true
	}
	for column, value := range b.scope {
		if value == nil {
			continue
		}
		want := fmt.Sprintf("%v", value)
		if want == "" {
			continue
		}
		have, ok := row[column]
		if !ok || have == nil {
			return false
		}
		if fmt.Sprintf("%v", have) != want {
			return false
		}
	}
	return true
}
