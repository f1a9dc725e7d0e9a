package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/docetangerina/estoque/internal/model"
)

// CreateItem inserts an item and its images in one transaction and
// returns the stored composite. If any image insert fails the item row
// is rolled back with it; partial writes never commit.
func CreateItem(ctx context.Context, db *sql.DB, item model.Item, images []model.Image) (*model.ItemFull, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO items (name, description, value, quantity, size_id, category_id)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.Name, item.Description, item.Value, item.Quantity, item.SizeID, item.CategoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	if err := insertImages(ctx, tx, id, images); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing item: %w", err)
	}

	return GetItemFull(ctx, db, id)
}

// UpdateItem replaces an item row and its whole image set in one
// transaction. No image diffing: existing rows go, the new set comes in.
func UpdateItem(ctx context.Context, db *sql.DB, item model.Item, images []model.Image) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET name = ?, description = ?, value = ?, quantity = ?, size_id = ?, category_id = ?
		 WHERE id = ?`,
		item.Name, item.Description, item.Value, item.Quantity, item.SizeID, item.CategoryID, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM images WHERE item_id = ?`, item.ID); err != nil {
		return fmt.Errorf("clearing item images: %w", err)
	}

	if err := insertImages(ctx, tx, item.ID, images); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing item update: %w", err)
	}
	return nil
}

func insertImages(ctx context.Context, tx *sql.Tx, itemID int64, images []model.Image) error {
	for _, img := range images {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO images (item_id, path) VALUES (?, ?)`,
			itemID, img.Path,
		)
		if err != nil {
			return fmt.Errorf("creating item image: %w", err)
		}
	}
	return nil
}

// DeleteItem removes an item; its image rows cascade with it.
func DeleteItem(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM items WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

const itemFullQuery = `
SELECT i.id, i.name, i.description, i.value, i.quantity, i.size_id, i.category_id,
       s.name, c.name
FROM items i
LEFT JOIN sizes s ON s.id = i.size_id
LEFT JOIN categories c ON c.id = i.category_id`

// GetItemFull returns the item joined with its size, category and
// ordered images, or nil when absent.
func GetItemFull(ctx context.Context, db *sql.DB, id int64) (*model.ItemFull, error) {
	row := db.QueryRowContext(ctx, itemFullQuery+` WHERE i.id = ?`, id)

	full, err := scanItemFull(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}

	images, err := listImages(ctx, db, []int64{full.Item.ID})
	if err != nil {
		return nil, err
	}
	full.Images = images[full.Item.ID]
	return full, nil
}

// ListItemsFull returns all items as composites, in insertion order.
// Images are fetched in a single second query and bucketed by item, so
// the listing never degrades into per-item lookups.
func ListItemsFull(ctx context.Context, db *sql.DB) ([]model.ItemFull, error) {
	rows, err := db.QueryContext(ctx, itemFullQuery+` ORDER BY i.id`)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var fulls []model.ItemFull
	var ids []int64
	for rows.Next() {
		full, err := scanItemFull(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		fulls = append(fulls, *full)
		ids = append(ids, full.Item.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return fulls, nil
	}

	images, err := listImages(ctx, db, ids)
	if err != nil {
		return nil, err
	}
	for i := range fulls {
		fulls[i].Images = images[fulls[i].Item.ID]
	}
	return fulls, nil
}

// scanItemFull scans one joined row. The scan func comes from either a
// QueryRow or a rows iterator.
func scanItemFull(scan func(...any) error) (*model.ItemFull, error) {
	var full model.ItemFull
	var description, sizeName, categoryName sql.NullString
	var sizeID, categoryID sql.NullInt64

	err := scan(
		&full.Item.ID, &full.Item.Name, &description, &full.Item.Value, &full.Item.Quantity,
		&sizeID, &categoryID, &sizeName, &categoryName,
	)
	if err != nil {
		return nil, err
	}

	full.Item.Description = description.String
	if sizeID.Valid {
		full.Item.SizeID = &sizeID.Int64
		full.Size = &model.Size{ID: sizeID.Int64, Name: sizeName.String}
	}
	if categoryID.Valid {
		full.Item.CategoryID = &categoryID.Int64
		full.Category = &model.Category{ID: categoryID.Int64, Name: categoryName.String}
	}
	return &full, nil
}

// listImages returns image rows for the given items, ordered within
// each item by insertion.
func listImages(ctx context.Context, db *sql.DB, itemIDs []int64) (map[int64][]model.Image, error) {
	query := `SELECT id, item_id, path FROM images WHERE item_id IN (?` +
		repeatPlaceholder(len(itemIDs)-1) + `) ORDER BY item_id, id`

	args := make([]any, len(itemIDs))
	for i, id := range itemIDs {
		args[i] = id
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	defer rows.Close()

	images := make(map[int64][]model.Image)
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.ItemID, &img.Path); err != nil {
			return nil, fmt.Errorf("scanning image: %w", err)
		}
		images[img.ItemID] = append(images[img.ItemID], img)
	}
	return images, rows.Err()
}

func repeatPlaceholder(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += ", ?"
	}
	return s
}

// ItemNameExists reports whether an item with the given name exists,
// matched case-insensitively, skipping excludeID.
func ItemNameExists(ctx context.Context, db *sql.DB, name string, excludeID int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM items WHERE lower(name) = lower(?) AND id <> ?)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking item name: %w", err)
	}
	return exists, nil
}
