package store

import (
	"context"
	"testing"

	"github.com/docetangerina/estoque/internal/db"
	"github.com/docetangerina/estoque/internal/model"
)

func TestCreateItemWithImages(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	size, _ := CreateSize(ctx, database, "M")
	category, _ := CreateCategory(ctx, database, "Camisas")

	full, err := CreateItem(ctx, database, model.Item{
		Name: "Camisa Azul", Description: "Manga longa", Value: 49.90, Quantity: 3,
		SizeID: &size.ID, CategoryID: &category.ID,
	}, []model.Image{{Path: "photos/a.jpg"}, {Path: "photos/b.jpg"}})
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}

	if full.Item.ID == 0 {
		t.Error("expected generated id")
	}
	if full.Size == nil || full.Size.Name != "M" {
		t.Errorf("expected joined size, got %+v", full.Size)
	}
	if full.Category == nil || full.Category.Name != "Camisas" {
		t.Errorf("expected joined category, got %+v", full.Category)
	}
	if len(full.Images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(full.Images))
	}
	// Insertion order.
	if full.Images[0].Path != "photos/a.jpg" || full.Images[1].Path != "photos/b.jpg" {
		t.Errorf("expected images in insertion order, got %+v", full.Images)
	}
}

func TestCreateItemAtomicity(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// The second image violates the schema's non-empty path check, so
	// the whole transaction, item row included, must roll back.
	_, err := CreateItem(ctx, database, model.Item{
		Name: "Camisa Azul", Description: "Manga longa", Value: 49.90, Quantity: 1,
	}, []model.Image{{Path: "photos/a.jpg"}, {Path: ""}, {Path: "photos/c.jpg"}})
	if err == nil {
		t.Fatal("expected image insert failure")
	}

	items, err := ListItemsFull(ctx, database)
	if err != nil {
		t.Fatalf("ListItemsFull: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no item rows after rollback, got %d", len(items))
	}

	var imageCount int
	database.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&imageCount)
	if imageCount != 0 {
		t.Errorf("expected no image rows after rollback, got %d", imageCount)
	}
}

func TestUpdateItemReplacesImageSet(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	full, _ := CreateItem(ctx, database, model.Item{
		Name: "Camisa Azul", Description: "Manga longa", Value: 49.90, Quantity: 1,
	}, []model.Image{{Path: "photos/old1.jpg"}, {Path: "photos/old2.jpg"}})

	item := full.Item
	item.Name = "Camisa Azul Clara"
	err := UpdateItem(ctx, database, item, []model.Image{{Path: "photos/new.jpg"}})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}

	got, _ := GetItemFull(ctx, database, item.ID)
	if got.Item.Name != "Camisa Azul Clara" {
		t.Errorf("expected updated name, got %q", got.Item.Name)
	}
	if len(got.Images) != 1 || got.Images[0].Path != "photos/new.jpg" {
		t.Errorf("expected wholesale image replacement, got %+v", got.Images)
	}
}

func TestDeleteItemCascadesImages(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	full, _ := CreateItem(ctx, database, model.Item{
		Name: "Camisa Azul", Description: "Manga longa", Value: 49.90, Quantity: 1,
	}, []model.Image{{Path: "photos/a.jpg"}, {Path: "photos/b.jpg"}, {Path: "photos/c.jpg"}})

	if err := DeleteItem(ctx, database, full.Item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}

	got, err := GetItemFull(ctx, database, full.Item.ID)
	if err != nil {
		t.Fatalf("GetItemFull: %v", err)
	}
	if got != nil {
		t.Error("expected absent item after delete")
	}

	var imageCount int
	database.QueryRow(`SELECT COUNT(*) FROM images`).Scan(&imageCount)
	if imageCount != 0 {
		t.Errorf("expected cascaded image deletion, got %d rows", imageCount)
	}
}

func TestDeleteSizeNullifiesItemReference(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	size, _ := CreateSize(ctx, database, "M")
	full, _ := CreateItem(ctx, database, model.Item{
		Name: "Camisa Azul", Description: "Manga longa", Value: 49.90, Quantity: 2,
		SizeID: &size.ID,
	}, nil)

	if err := DeleteSize(ctx, database, size.ID); err != nil {
		t.Fatalf("DeleteSize: %v", err)
	}

	got, _ := GetItemFull(ctx, database, full.Item.ID)
	if got == nil {
		t.Fatal("item must survive its size's deletion")
	}
	if got.Item.SizeID != nil || got.Size != nil {
		t.Errorf("expected nullified size reference, got %+v", got.Item)
	}
	if got.Item.Quantity != 2 {
		t.Errorf("expected quantity unchanged, got %d", got.Item.Quantity)
	}
}

func TestListItemsFullJoins(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	size, _ := CreateSize(ctx, database, "M")
	CreateItem(ctx, database, model.Item{
		Name: "Com Tamanho", Description: "x", SizeID: &size.ID,
	}, []model.Image{{Path: "photos/a.jpg"}})
	CreateItem(ctx, database, model.Item{
		Name: "Sem Tamanho", Description: "y",
	}, nil)

	items, err := ListItemsFull(ctx, database)
	if err != nil {
		t.Fatalf("ListItemsFull: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Size == nil || items[0].Size.Name != "M" {
		t.Errorf("expected joined size on first item, got %+v", items[0].Size)
	}
	if len(items[0].Images) != 1 {
		t.Errorf("expected 1 image on first item, got %d", len(items[0].Images))
	}
	if items[1].Size != nil || len(items[1].Images) != 0 {
		t.Errorf("expected bare second item, got %+v", items[1])
	}
}

func TestItemNameExists(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	full, _ := CreateItem(ctx, database, model.Item{Name: "Camisa Azul", Description: "x"}, nil)

	exists, err := ItemNameExists(ctx, database, "camisa azul", 0)
	if err != nil {
		t.Fatalf("ItemNameExists: %v", err)
	}
	if !exists {
		t.Error("expected case-insensitive match")
	}

	exists, _ = ItemNameExists(ctx, database, "Camisa Azul", full.Item.ID)
	if exists {
		t.Error("expected no match when excluding own id")
	}
}
