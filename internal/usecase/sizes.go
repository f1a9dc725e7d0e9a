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

// Sizes implements the size use cases, mirroring Categories.
type Sizes struct {
	db  *sql.DB
	bus *watch.Bus
	log *zap.Logger

	// MaxNameLength bounds size names; zero means unbounded.
	MaxNameLength int
}

func NewSizes(db *sql.DB, bus *watch.Bus, log *zap.Logger) *Sizes {
	return &Sizes{db: db, bus: bus, log: log}
}

// Add normalizes and validates the name, rejects case-insensitive
// duplicates, then persists.
func (s *Sizes) Add(ctx context.Context, name string) (*model.Size, error) {
	name = NormalizeName(name)

	if err := model.ValidateName(name, s.MaxNameLength); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	exists, err := store.SizeNameExists(ctx, s.db, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	created, err := store.CreateSize(ctx, s.db, name)
	if err != nil {
		return nil, err
	}

	s.log.Info("size added", zap.Int64("id", created.ID), zap.String("name", created.Name))
	s.bus.Notify(watch.Sizes)
	return created, nil
}

// Update excludes the row's own id from the duplicate check; a missing
// row fails with ErrNotFound.
func (s *Sizes) Update(ctx context.Context, size model.Size) (*model.Size, error) {
	normalized := model.Size{ID: size.ID, Name: NormalizeName(size.Name)}

	if err := model.ValidateName(normalized.Name, s.MaxNameLength); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	existing, err := store.GetSize(ctx, s.db, normalized.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	exists, err := store.SizeNameExists(ctx, s.db, normalized.Name, normalized.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	if err := store.UpdateSize(ctx, s.db, normalized); err != nil {
		return nil, err
	}

	s.bus.Notify(watch.Sizes)
	return &normalized, nil
}

// Delete removes the size; item references are cleared by the store,
// so item subscribers are notified too.
func (s *Sizes) Delete(ctx context.Context, size model.Size) error {
	if err := store.DeleteSize(ctx, s.db, size.ID); err != nil {
		return err
	}

	s.log.Info("size deleted", zap.Int64("id", size.ID))
	s.bus.Notify(watch.Sizes, watch.Items)
	return nil
}

// GetAll returns a snapshot of all sizes in insertion order.
func (s *Sizes) GetAll(ctx context.Context) ([]model.Size, error) {
	return store.ListSizes(ctx, s.db)
}

// GetByID returns a size, or nil when absent.
func (s *Sizes) GetByID(ctx context.Context, id int64) (*model.Size, error) {
	return store.GetSize(ctx, s.db, id)
}

// NameExists reports whether the normalized name is taken.
func (s *Sizes) NameExists(ctx context.Context, name string) (bool, error) {
	return store.SizeNameExists(ctx, s.db, NormalizeName(name), 0)
}

// Watch returns a push-based stream of the full collection.
func (s *Sizes) Watch(ctx context.Context) (<-chan []model.Size, error) {
	return observe(ctx, s.bus, watch.Sizes, s.log, func(ctx context.Context) ([]model.Size, error) {
		return store.ListSizes(ctx, s.db)
	})
}
