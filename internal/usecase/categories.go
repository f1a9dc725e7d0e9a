package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/docetangerina/estoque/internal/model"
	"github.com/docetangerina/estoque/internal/store"
	"github.com/docetangerina/estoque/internal/watch"
)

// Categories implements the category use cases. Every mutation runs
// the same pipeline: normalize, validate, uniqueness check, persist,
// notify.
type Categories struct {
	db  *sql.DB
	bus *watch.Bus
	log *zap.Logger

	// MaxNameLength bounds category names; zero means unbounded.
	MaxNameLength int
}

func NewCategories(db *sql.DB, bus *watch.Bus, log *zap.Logger) *Categories {
	return &Categories{db: db, bus: bus, log: log}
}

// Add normalizes and validates the name, rejects case-insensitive
// duplicates, then persists. Returns the stored category with its
// generated id.
func (c *Categories) Add(ctx context.Context, name string) (*model.Category, error) {
	name = NormalizeName(name)

	if err := model.ValidateName(name, c.MaxNameLength); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	exists, err := store.CategoryNameExists(ctx, c.db, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	created, err := store.CreateCategory(ctx, c.db, name)
	if err != nil {
		return nil, err
	}

	c.log.Info("category added", zap.Int64("id", created.ID), zap.String("name", created.Name))
	c.bus.Notify(watch.Categories)
	return created, nil
}

// Update runs the add pipeline but excludes the row's own id from the
// duplicate check, so saving a category under its current name
// succeeds. A missing row fails with ErrNotFound.
func (c *Categories) Update(ctx context.Context, cat model.Category) (*model.Category, error) {
	normalized := model.Category{ID: cat.ID, Name: NormalizeName(cat.Name)}

	if err := model.ValidateName(normalized.Name, c.MaxNameLength); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	existing, err := store.GetCategory(ctx, c.db, normalized.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	exists, err := store.CategoryNameExists(ctx, c.db, normalized.Name, normalized.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	if err := store.UpdateCategory(ctx, c.db, normalized); err != nil {
		return nil, err
	}

	c.bus.Notify(watch.Categories)
	return &normalized, nil
}

// Delete removes the category. The store's foreign-key policy clears
// references in item rows, so item subscribers are notified too.
func (c *Categories) Delete(ctx context.Context, cat model.Category) error {
	if err := store.DeleteCategory(ctx, c.db, cat.ID); err != nil {
		return err
	}

	c.log.Info("category deleted", zap.Int64("id", cat.ID))
	c.bus.Notify(watch.Categories, watch.Items)
	return nil
}

// GetAll returns a snapshot of all categories in insertion order.
func (c *Categories) GetAll(ctx context.Context) ([]model.Category, error) {
	return store.ListCategories(ctx, c.db)
}

// GetByID returns a category, or nil when absent.
func (c *Categories) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	return store.GetCategory(ctx, c.db, id)
}

// NameExists reports whether the normalized name is taken.
func (c *Categories) NameExists(ctx context.Context, name string) (bool, error) {
	return store.CategoryNameExists(ctx, c.db, NormalizeName(name), 0)
}

// Watch returns a push-based stream of the full collection: the
// current snapshot immediately, then a fresh one after every mutation,
// until ctx is cancelled.
func (c *Categories) Watch(ctx context.Context) (<-chan []model.Category, error) {
	return observe(ctx, c.bus, watch.Categories, c.log, func(ctx context.Context) ([]model.Category, error) {
		return store.ListCategories(ctx, c.db)
	})
}
