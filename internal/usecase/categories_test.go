package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/docetangerina/estoque/internal/model"
)

func TestCategoriesAddNormalizes(t *testing.T) {
	database, bus, log := newTestEnv(t)
	categories := NewCategories(database, bus, log)
	ctx := context.Background()

	created, err := categories.Add(ctx, "  camisas novas ")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if created.Name != "Camisas Novas" {
		t.Errorf("Name = %q, want %q", created.Name, "Camisas Novas")
	}

	stored, err := categories.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if stored == nil || stored.Name != "Camisas Novas" {
		t.Errorf("stored = %+v, want name %q", stored, "Camisas Novas")
	}
}

func TestCategoriesAddRejectsDuplicates(t *testing.T) {
	database, bus, log := newTestEnv(t)
	categories := NewCategories(database, bus, log)
	ctx := context.Background()

	if _, err := categories.Add(ctx, "Camisas"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Normalization folds these onto the existing name.
	for _, name := range []string{"Camisas", "camisas", "  CAMISAS  "} {
		if _, err := categories.Add(ctx, name); !errors.Is(err, ErrDuplicateName) {
			t.Errorf("Add(%q) error = %v, want ErrDuplicateName", name, err)
		}
	}

	created, err := categories.Add(ctx, "Calças")
	if err != nil {
		t.Fatalf("Add(Calças) error = %v", err)
	}
	if created.ID == 0 {
		t.Error("Add(Calças) returned zero id")
	}

	all, err := categories.GetAll(ctx)
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len(all) = %d, want 2", len(all))
	}
}

func TestCategoriesAddValidation(t *testing.T) {
	database, bus, log := newTestEnv(t)
	categories := NewCategories(database, bus, log)
	categories.MaxNameLength = 10
	ctx := context.Background()

	cases := []struct {
		label string
		name  string
	}{
		{"blank", "   "},
		{"empty", ""},
		{"too long", "Uma Categoria Longa"},
	}
	for _, tc := range cases {
		if _, err := categories.Add(ctx, tc.name); !errors.Is(err, ErrValidation) {
			t.Errorf("%s: Add(%q) error = %v, want ErrValidation", tc.label, tc.name, err)
		}
	}
}

func TestCategoriesUpdate(t *testing.T) {
	database, bus, log := newTestEnv(t)
	categories := NewCategories(database, bus, log)
	ctx := context.Background()

	camisas, err := categories.Add(ctx, "Camisas")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	calcas, err := categories.Add(ctx, "Calças")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	// Saving under the current name is not a duplicate.
	if _, err := categories.Update(ctx, model.Category{ID: camisas.ID, Name: "camisas"}); err != nil {
		t.Errorf("Update(own name) error = %v", err)
	}

	// Taking another row's name is.
	if _, err := categories.Update(ctx, model.Category{ID: camisas.ID, Name: "calças"}); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("Update(taken name) error = %v, want ErrDuplicateName", err)
	}

	updated, err := categories.Update(ctx, model.Category{ID: calcas.ID, Name: "  bermudas "})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Bermudas" {
		t.Errorf("Name = %q, want %q", updated.Name, "Bermudas")
	}

	if _, err := categories.Update(ctx, model.Category{ID: 999, Name: "Casacos"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrNotFound", err)
	}
}

func TestCategoriesWatch(t *testing.T) {
	database, bus, log := newTestEnv(t)
	categories := NewCategories(database, bus, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := categories.Add(ctx, "Camisas"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	stream, err := categories.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	first := receiveUntil(t, stream, func(snap []model.Category) bool { return len(snap) == 1 })
	if first[0].Name != "Camisas" {
		t.Errorf("initial snapshot = %+v", first)
	}

	if _, err := categories.Add(ctx, "Calças"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	second := receiveUntil(t, stream, func(snap []model.Category) bool { return len(snap) == 2 })
	if second[0].Name != "Camisas" || second[1].Name != "Calças" {
		t.Errorf("snapshot after add = %+v", second)
	}
}

func TestCategoriesDeleteNotifiesItemWatchers(t *testing.T) {
	database, bus, log := newTestEnv(t)
	categories := NewCategories(database, bus, log)
	items := NewItems(database, bus, log)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := categories.Add(ctx, "Camisas")
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	full, err := items.Add(ctx, model.ItemFull{Item: model.Item{
		Name:        "Camisa Azul",
		Description: "Manga longa",
		Value:       59.9,
		Quantity:    3,
		CategoryID:  &cat.ID,
	}})
	if err != nil {
		t.Fatalf("items.Add() error = %v", err)
	}
	if full.Category == nil || full.Category.ID != cat.ID {
		t.Fatalf("item category = %+v, want id %d", full.Category, cat.ID)
	}

	stream, err := items.Watch(ctx)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	receiveUntil(t, stream, func(snap []model.ItemFull) bool { return len(snap) == 1 })

	if err := categories.Delete(ctx, *cat); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// The item survives with its reference cleared, and the item
	// stream observes it without any direct item mutation.
	snap := receiveUntil(t, stream, func(snap []model.ItemFull) bool {
		return len(snap) == 1 && snap[0].Category == nil
	})
	if snap[0].Item.CategoryID != nil {
		t.Errorf("CategoryID = %v, want nil", *snap[0].Item.CategoryID)
	}
	if snap[0].Item.Name != "Camisa Azul" {
		t.Errorf("Name = %q changed by category delete", snap[0].Item.Name)
	}
}
