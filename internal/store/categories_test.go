package store

import (
	"context"
	"testing"

	"github.com/docetangerina/estoque/internal/db"
	"github.com/docetangerina/estoque/internal/model"
)

func TestCreateAndGetCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	category, err := CreateCategory(ctx, database, "Camisas")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if category.ID == 0 {
		t.Error("expected generated id")
	}
	if category.Name != "Camisas" {
		t.Errorf("expected name 'Camisas', got %q", category.Name)
	}

	got, err := GetCategory(ctx, database, category.ID)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if got == nil || got.Name != "Camisas" {
		t.Errorf("expected stored category, got %+v", got)
	}
}

func TestGetCategoryAbsent(t *testing.T) {
	database := db.NewTestDB(t)

	got, err := GetCategory(context.Background(), database, 999)
	if err != nil {
		t.Fatalf("GetCategory: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for absent category, got %+v", got)
	}
}

func TestListCategoriesInsertionOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateCategory(ctx, database, "Vestidos")
	CreateCategory(ctx, database, "Camisas")
	CreateCategory(ctx, database, "Acessórios")

	categories, err := ListCategories(ctx, database)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}
	// Insertion order, not alphabetical.
	if categories[0].Name != "Vestidos" || categories[2].Name != "Acessórios" {
		t.Errorf("expected insertion order, got %+v", categories)
	}
}

func TestCategoryNameExistsCaseInsensitive(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateCategory(ctx, database, "Camisas")

	exists, err := CategoryNameExists(ctx, database, "camisas", 0)
	if err != nil {
		t.Fatalf("CategoryNameExists: %v", err)
	}
	if !exists {
		t.Error("expected case-insensitive match")
	}

	exists, _ = CategoryNameExists(ctx, database, "CAMISAS", created.ID)
	if exists {
		t.Error("expected no match when excluding own id")
	}

	exists, _ = CategoryNameExists(ctx, database, "Calças", 0)
	if exists {
		t.Error("expected no match for unused name")
	}
}

func TestUpdateCategory(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateCategory(ctx, database, "Camisas")

	if err := UpdateCategory(ctx, database, model.Category{ID: created.ID, Name: "Blusas"}); err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}

	got, _ := GetCategory(ctx, database, created.ID)
	if got.Name != "Blusas" {
		t.Errorf("expected updated name 'Blusas', got %q", got.Name)
	}
}

func TestDeleteCategoryNullifiesItemReference(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	category, _ := CreateCategory(ctx, database, "Camisas")
	item, err := CreateItem(ctx, database, model.Item{
		Name: "Camisa Azul", Description: "Manga longa", Value: 49.90, Quantity: 2,
		CategoryID: &category.ID,
	}, nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if err := DeleteCategory(ctx, database, category.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}

	got, err := GetItemFull(ctx, database, item.Item.ID)
	if err != nil {
		t.Fatalf("GetItemFull: %v", err)
	}
	if got == nil {
		t.Fatal("item must survive its category's deletion")
	}
	if got.Item.CategoryID != nil || got.Category != nil {
		t.Errorf("expected nullified category reference, got %+v", got.Item)
	}
	// Other fields untouched.
	if got.Item.Name != "Camisa Azul" || got.Item.Value != 49.90 || got.Item.Quantity != 2 {
		t.Errorf("expected item fields unchanged, got %+v", got.Item)
	}
}
