package posgrest

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// repository is a generic GORM-based repository implementation.
// The specific repositories embed it and add their own queries.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FirstBy retrieves the first entity matching a specific field value.
// The key parameter is a condition such as "user_id = ?".
func (r *repository[T]) FirstBy(ctx context.Context, key string, value interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(key, value).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// FirstByForUpdate is FirstBy holding a row lock until the surrounding transaction ends.
func (r *repository[T]) FirstByForUpdate(ctx context.Context, key string, value interface{}) (*T, error) {
	var entity T
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(key, value).
		First(&entity).Error
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Transactor runs callbacks inside a database transaction, handing them
// repositories bound to that transaction through bind.
type Transactor[R any] struct {
	db   *gorm.DB
	bind func(tx *gorm.DB) R
}

func NewTransactor[R any](db *gorm.DB, bind func(tx *gorm.DB) R) *Transactor[R] {
	return &Transactor[R]{db: db, bind: bind}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
func (t *Transactor[R]) WithinTransaction(ctx context.Context, fn func(repos R) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(t.bind(tx))
	})
}
