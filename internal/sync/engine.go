// Package sync implements the optimistic-mutation protocol shared by all
// entity kinds: snapshot the affected cache regions, apply the predicted
// outcome, dispatch the remote call, then commit (invalidate) or roll the
// cache back to the exact snapshot. One generic engine is instantiated per
// collection instead of duplicating the flow per entity.
//
// Mutations on a kind are serialized by a per-engine mutex held from
// snapshot to terminal state, so an overlapping mutation can never take
// its snapshot from a not-yet-confirmed optimistic write.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	gosync "sync"
	"time"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/cache"
	"github.com/adrianstier/rse-tracker/internal/logger"
	"github.com/adrianstier/rse-tracker/internal/notify"
	"github.com/adrianstier/rse-tracker/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Identifiable is satisfied by every collection row
type Identifiable interface {
	GetID() uuid.UUID
}

// Engine drives reads through the cache and mutations through the
// optimistic protocol for one entity kind
type Engine[T Identifiable] struct {
	desc     repository.Descriptor
	repo     repository.Repository[T]
	cache    *cache.QueryCache
	notifier notify.Notifier
	log      *logger.Logger

	// serializes mutations on this kind from snapshot to terminal state
	mu gosync.Mutex
}

// NewEngine creates the engine for one collection
func NewEngine[T Identifiable](desc repository.Descriptor, repo repository.Repository[T], qc *cache.QueryCache, notifier notify.Notifier) *Engine[T] {
	return &Engine[T]{
		desc:     desc,
		repo:     repo,
		cache:    qc,
		notifier: notifier,
		log:      logger.New().WithField("kind", desc.Kind),
	}
}

// Kind returns the engine's entity kind
func (e *Engine[T]) Kind() string {
	return e.desc.Kind
}

// List returns the filtered, ordered collection, from cache when fresh
func (e *Engine[T]) List(ctx context.Context, filters map[string]interface{}) ([]T, error) {
	key := cache.ListKey(e.desc.Kind, filters)
	if value, state := e.cache.Read(key); state == cache.Fresh {
		return value.([]T), nil
	}

	rows, err := e.repo.List(ctx, filters)
	if err != nil {
		if apperrors.IsValidation(err) {
			return nil, err
		}
		return nil, apperrors.NewRemoteCallError("fetch "+e.desc.Kind, err)
	}

	e.cache.WriteList(key, filters, rows)
	return rows, nil
}

// Get returns a single row; exactly one row must match the id
func (e *Engine[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	key := cache.ItemKey(e.desc.Kind, id.String())
	if value, state := e.cache.Read(key); state == cache.Fresh {
		row := value.(T)
		return &row, nil
	}

	row, err := e.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(e.desc.Singular)
		}
		return nil, apperrors.NewRemoteCallError("fetch "+e.desc.Singular, err)
	}

	e.cache.Write(key, *row)
	return row, nil
}

// Create optimistically inserts the row into matching cached lists, then
// dispatches the insert. On success the kind is invalidated so the next
// read reconciles with the authoritative row; on failure every touched
// region is restored to its snapshot.
func (e *Engine[T]) Create(ctx context.Context, row T) (*T, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snaps := e.snapshotLists()

	provisional, err := predictCreate(row)
	if err == nil {
		e.applyToLists(func(le cache.ListEntry, rows []T) ([]T, bool) {
			if !matchesFilters(provisional, le.Filters) {
				return nil, false
			}
			next := make([]T, 0, len(rows)+1)
			next = append(next, provisional)
			next = append(next, rows...)
			return next, true
		})
	} else {
		e.log.WithField("error", err.Error()).Warn("skipping optimistic create apply")
	}

	if err := e.repo.Create(ctx, &row); err != nil {
		e.restore(snaps)
		e.notifier.Error(e.desc.Kind, fmt.Sprintf("Failed to create %s: %v", e.desc.Singular, err))
		return nil, apperrors.NewRemoteCallError("create "+e.desc.Singular, err)
	}

	e.cache.Invalidate(e.desc.Kind)
	e.notifier.Success(e.desc.Kind, capitalize(e.desc.Singular)+" created")
	return &row, nil
}

// Update optimistically rewrites the matching record in every cached
// region, dispatches the partial update, and commits or rolls back
func (e *Engine[T]) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*T, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	itemKey := cache.ItemKey(e.desc.Kind, id.String())
	snaps := e.snapshotLists()
	snaps = append(snaps, e.snapshotKey(itemKey))

	e.applyToLists(func(le cache.ListEntry, rows []T) ([]T, bool) {
		touched := false
		next := make([]T, len(rows))
		for i, r := range rows {
			if r.GetID() == id {
				if predicted, err := applyChanges(r, changes); err == nil {
					next[i] = predicted
					touched = true
					continue
				}
			}
			next[i] = r
		}
		return next, touched
	})
	if value, existed := e.cache.Snapshot(itemKey); existed {
		if row, ok := value.(T); ok {
			if predicted, err := applyChanges(row, changes); err == nil {
				e.cache.Write(itemKey, predicted)
			}
		}
	}

	row, err := e.repo.Update(ctx, id, changes)
	if err != nil {
		e.restore(snaps)
		e.notifier.Error(e.desc.Kind, fmt.Sprintf("Failed to update %s: %v", e.desc.Singular, err))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(e.desc.Singular)
		}
		return nil, apperrors.NewRemoteCallError("update "+e.desc.Singular, err)
	}

	e.cache.Invalidate(e.desc.Kind)
	e.notifier.Success(e.desc.Kind, capitalize(e.desc.Singular)+" updated")
	return row, nil
}

// Delete optimistically prunes the record from cached regions, dispatches
// the delete, and commits or rolls back. Deleting an already-gone row
// succeeds: the caller treats the id as confirmation.
func (e *Engine[T]) Delete(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	itemKey := cache.ItemKey(e.desc.Kind, id.String())
	snaps := e.snapshotLists()
	snaps = append(snaps, e.snapshotKey(itemKey))

	e.applyToLists(func(le cache.ListEntry, rows []T) ([]T, bool) {
		next := make([]T, 0, len(rows))
		touched := false
		for _, r := range rows {
			if r.GetID() == id {
				touched = true
				continue
			}
			next = append(next, r)
		}
		return next, touched
	})
	e.cache.Delete(itemKey)

	if err := e.repo.Delete(ctx, id); err != nil {
		e.restore(snaps)
		e.notifier.Error(e.desc.Kind, fmt.Sprintf("Failed to delete %s: %v", e.desc.Singular, err))
		return uuid.Nil, apperrors.NewRemoteCallError("delete "+e.desc.Singular, err)
	}

	e.cache.Invalidate(e.desc.Kind)
	e.notifier.Success(e.desc.Kind, capitalize(e.desc.Singular)+" deleted")
	return id, nil
}

// ------------------------------
// Snapshot/restore plumbing
// ------------------------------

type regionSnapshot struct {
	key     string
	value   interface{}
	existed bool
}

func (e *Engine[T]) snapshotLists() []regionSnapshot {
	lists := e.cache.ListsFor(e.desc.Kind)
	snaps := make([]regionSnapshot, 0, len(lists))
	for _, le := range lists {
		snaps = append(snaps, regionSnapshot{key: le.Key, value: le.Value, existed: true})
	}
	return snaps
}

func (e *Engine[T]) snapshotKey(key string) regionSnapshot {
	value, existed := e.cache.Snapshot(key)
	return regionSnapshot{key: key, value: value, existed: existed}
}

func (e *Engine[T]) restore(snaps []regionSnapshot) {
	for _, s := range snaps {
		e.cache.Restore(s.key, s.value, s.existed)
	}
}

// applyToLists rewrites each cached list region of the kind through fn.
// fn receives a region and must return a replacement slice; cached values
// are never mutated in place so snapshots stay exact.
func (e *Engine[T]) applyToLists(fn func(le cache.ListEntry, rows []T) ([]T, bool)) {
	for _, le := range e.cache.ListsFor(e.desc.Kind) {
		rows, ok := le.Value.([]T)
		if !ok {
			continue
		}
		if next, touched := fn(le, rows); touched {
			e.cache.WriteList(le.Key, le.Filters, next)
		}
	}
}

// ------------------------------
// Prediction helpers
// ------------------------------

// applyChanges produces the expected post-update row by merging the
// partial column map over the row's JSON form. Column names and JSON tags
// coincide by construction of the models.
func applyChanges[T any](row T, changes map[string]interface{}) (T, error) {
	var zero T

	m, err := toMap(row)
	if err != nil {
		return zero, err
	}
	for column, value := range changes {
		normalized, err := toJSONValue(value)
		if err != nil {
			return zero, err
		}
		m[column] = normalized
	}
	m["updated_at"] = time.Now().UTC().Format(time.RFC3339Nano)

	return fromMap[T](m)
}

// predictCreate produces the expected persisted row for an insert:
// provisional id and timestamps until the store's authoritative row
// replaces it on reconciliation
func predictCreate[T Identifiable](row T) (T, error) {
	var zero T

	m, err := toMap(row)
	if err != nil {
		return zero, err
	}
	if row.GetID() == uuid.Nil {
		m["id"] = uuid.New().String()
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)
	m["created_at"] = now
	m["updated_at"] = now

	return fromMap[T](m)
}

// matchesFilters reports whether a row belongs in a list region read with
// the given equality filters
func matchesFilters[T any](row T, filters map[string]interface{}) bool {
	if len(filters) == 0 {
		return true
	}
	m, err := toMap(row)
	if err != nil {
		return false
	}
	for column, value := range filters {
		if value == nil {
			continue
		}
		want := fmt.Sprintf("%v", value)
		if want == "" {
			continue
		}
		have, ok := m[column]
		if !ok || have == nil {
			return false
		}
		if fmt.Sprintf("%v", have) != want {
			return false
		}
	}
	return true
}

func toMap[T any](row T) (map[string]interface{}, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromMap[T any](m map[string]interface{}) (T, error) {
	var row T
	raw, err := json.Marshal(m)
	if err != nil {
		return row, err
	}
	err = json.Unmarshal(raw, &row)
	return row, err
}

func toJSONValue(value interface{}) (interface{}, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var out interface{}
	err = json.Unmarshal(raw, &out)
	return out, err
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
