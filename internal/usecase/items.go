package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/docetangerina/estoque/internal/model"
	"github.com/docetangerina/estoque/internal/store"
	"github.com/docetangerina/estoque/internal/watch"
)

// Items implements the item use cases. Item names are trimmed but not
// title-cased; duplicate detection is case-insensitive like the other
// entities. Item and image rows always move in one transaction.
type Items struct {
	db  *sql.DB
	bus *watch.Bus
	log *zap.Logger

	// RequireDescription rejects blank descriptions when true.
	RequireDescription bool
}

func NewItems(db *sql.DB, bus *watch.Bus, log *zap.Logger) *Items {
	return &Items{db: db, bus: bus, log: log, RequireDescription: true}
}

// Add validates the item, rejects duplicate names, then persists the
// item and its images atomically. Returns the stored composite.
func (i *Items) Add(ctx context.Context, full model.ItemFull) (*model.ItemFull, error) {
	item := full.Item
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)

	if err := model.ValidateItem(item, i.RequireDescription); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	exists, err := store.ItemNameExists(ctx, i.db, item.Name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	created, err := store.CreateItem(ctx, i.db, item, full.Images)
	if err != nil {
		return nil, err
	}

	i.log.Info("item added",
		zap.Int64("id", created.Item.ID),
		zap.String("name", created.Item.Name),
		zap.Int("images", len(created.Images)))
	i.bus.Notify(watch.Items)
	return created, nil
}

// Update runs the add pipeline excluding the row's own id from the
// duplicate check, then replaces the row and its whole image set in
// one transaction. A missing row fails with ErrNotFound.
func (i *Items) Update(ctx context.Context, full model.ItemFull) (*model.ItemFull, error) {
	item := full.Item
	item.Name = strings.TrimSpace(item.Name)
	item.Description = strings.TrimSpace(item.Description)

	if err := model.ValidateItem(item, i.RequireDescription); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	existing, err := store.GetItemFull(ctx, i.db, item.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	exists, err := store.ItemNameExists(ctx, i.db, item.Name, item.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateName
	}

	if err := store.UpdateItem(ctx, i.db, item, full.Images); err != nil {
		return nil, err
	}

	i.bus.Notify(watch.Items)
	return store.GetItemFull(ctx, i.db, item.ID)
}

// Delete removes the item; its images cascade with it.
func (i *Items) Delete(ctx context.Context, item model.Item) error {
	if err := store.DeleteItem(ctx, i.db, item.ID); err != nil {
		return err
	}

	i.log.Info("item deleted", zap.Int64("id", item.ID))
	i.bus.Notify(watch.Items)
	return nil
}

// GetAll returns all items as composites, in insertion order.
func (i *Items) GetAll(ctx context.Context) ([]model.ItemFull, error) {
	return store.ListItemsFull(ctx, i.db)
}

// GetByID returns the composite, or nil when absent.
func (i *Items) GetByID(ctx context.Context, id int64) (*model.ItemFull, error) {
	return store.GetItemFull(ctx, i.db, id)
}

// Watch returns a push-based stream of the full composite collection.
// It also fires when a size or category delete nullifies references.
func (i *Items) Watch(ctx context.Context) (<-chan []model.ItemFull, error) {
	return observe(ctx, i.bus, watch.Items, i.log, func(ctx context.Context) ([]model.ItemFull, error) {
		return store.ListItemsFull(ctx, i.db)
	})
}
