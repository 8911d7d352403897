package repository

import (
	"context"
	"fmt"

	"github.com/adrianstier/rse-tracker/internal/apperrors"
	"github.com/adrianstier/rse-tracker/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mocks.go -package=mocks

// Repository is the uniform per-collection read/write contract against the
// remote store. List accepts equality filters on whitelisted columns only;
// ordering is fixed per collection. Errors from the store propagate as-is
// (gorm.ErrRecordNotFound included) and are translated by the sync layer.
type Repository[T any] interface {
	List(ctx context.Context, filters map[string]interface{}) ([]T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, row *T) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]T, error)
	Count(ctx context.Context, filters map[string]interface{}) (int64, error)
	CountByColumn(ctx context.Context, column string, filters map[string]interface{}) (map[string]int64, error)
}

// ActionItemRepositoryInterface adds the scenario-resolving list variant on
// top of the uniform contract.
type ActionItemRepositoryInterface interface {
	Repository[models.ActionItem]
	ListWithScenarios(ctx context.Context, filters map[string]interface{}) ([]models.ActionItem, error)
}

// Descriptor describes how a collection is read: its cache kind, fixed
// ordering and the set of equality-filterable columns.
type Descriptor struct {
	Kind          string
	Singular      string
	OrderClause   string
	FilterColumns []string
}

func (d Descriptor) filterable(column string) bool {
	for _, c := range d.FilterColumns {
		if c == column {
			return true
		}
	}
	return false
}

// GormRepository is the GORM-backed implementation of Repository
type GormRepository[T any] struct {
	db   *gorm.DB
	desc Descriptor
}

// NewGormRepository creates a repository for one collection
func NewGormRepository[T any](db *gorm.DB, desc Descriptor) *GormRepository[T] {
	return &GormRepository[T]{db: db, desc: desc}
}

// Describe returns the collection descriptor
func (r *GormRepository[T]) Describe() Descriptor {
	return r.desc
}

func (r *GormRepository[T]) applyFilters(q *gorm.DB, filters map[string]interface{}) (*gorm.DB, error) {
	for column, value := range filters {
		if value == nil {
			continue
		}
		if !r.desc.filterable(column) {
			return nil, apperrors.NewValidationError(column, "not an equality-filterable column")
		}
		q = q.Where(fmt.Sprintf("%s = ?", column), value)
	}
	return q, nil
}

// List retrieves rows matching the equality filters in the collection's fixed order
func (r *GormRepository[T]) List(ctx context.Context, filters map[string]interface{}) ([]T, error) {
	q, err := r.applyFilters(r.db.WithContext(ctx).Model(new(T)), filters)
	if err != nil {
		return nil, err
	}

	var rows []T
	if err := q.Order(r.desc.OrderClause).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByID retrieves a single row; exactly one row must match
func (r *GormRepository[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a row; the store assigns id and timestamps and the
// persisted row is written back into row
func (r *GormRepository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update applies a partial column map and returns the persisted row.
// An empty change set is a no-op read: updatable fields stay unchanged.
func (r *GormRepository[T]) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*T, error) {
	if len(changes) > 0 {
		tx := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(changes)
		if tx.Error != nil {
			return nil, tx.Error
		}
		if tx.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a row by id. Deleting a row that is already gone is not
// an error; the caller treats the supplied id as confirmation either way.
func (r *GormRepository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(new(T), "id = ?", id).Error
}

// Search finds rows whose title or description matches the query
func (r *GormRepository[T]) Search(ctx context.Context, query string, limit int) ([]T, error) {
	var rows []T
	err := r.db.WithContext(ctx).Model(new(T)).
		Where("title ILIKE ? OR description ILIKE ?", "%"+query+"%", "%"+query+"%").
		Order(r.desc.OrderClause).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the number of rows matching the equality filters
func (r *GormRepository[T]) Count(ctx context.Context, filters map[string]interface{}) (int64, error) {
	q, err := r.applyFilters(r.db.WithContext(ctx).Model(new(T)), filters)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// CountByColumn groups matching rows by a column's text value. NULLs are
// reported under the empty string.
func (r *GormRepository[T]) CountByColumn(ctx context.Context, column string, filters map[string]interface{}) (map[string]int64, error) {
	q, err := r.applyFilters(r.db.WithContext(ctx).Model(new(T)), filters)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		Value string
		Total int64
	}
	var buckets []bucket
	sel := fmt.Sprintf("COALESCE(%s::text, '') AS value, COUNT(*) AS total", column)
	if err := q.Select(sel).Group(column).Scan(&buckets).Error; err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		counts[b.Value] = b.Total
	}
	return counts, nil
}
