package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/docetangerina/estoque/internal/model"
)

// CreateSize inserts a size and returns the stored row.
func CreateSize(ctx context.Context, db *sql.DB, name string) (*model.Size, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO sizes (name) VALUES (?)`, name,
	)
	if err != nil {
		return nil, fmt.Errorf("creating size: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting size id: %w", err)
	}

	return GetSize(ctx, db, id)
}

// GetSize returns a size by ID, or nil when absent.
func GetSize(ctx context.Context, db *sql.DB, id int64) (*model.Size, error) {
	s := &model.Size{}
	err := db.QueryRowContext(ctx,
		`SELECT id, name FROM sizes WHERE id = ?`, id,
	).Scan(&s.ID, &s.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting size: %w", err)
	}
	return s, nil
}

// ListSizes returns all sizes in insertion order.
func ListSizes(ctx context.Context, db *sql.DB) ([]model.Size, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name FROM sizes ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sizes: %w", err)
	}
	defer rows.Close()

	var sizes []model.Size
	for rows.Next() {
		var s model.Size
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("scanning size: %w", err)
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

// UpdateSize replaces a size row.
func UpdateSize(ctx context.Context, db *sql.DB, s model.Size) error {
	_, err := db.ExecContext(ctx,
		`UPDATE sizes SET name = ? WHERE id = ?`, s.Name, s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating size: %w", err)
	}
	return nil
}

// DeleteSize removes a size. Items referencing it keep their row; the
// foreign key clears their size_id.
func DeleteSize(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`DELETE FROM sizes WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("deleting size: %w", err)
	}
	return nil
}

// SizeNameExists reports whether a size with the given name exists,
// matched case-insensitively, skipping excludeID.
func SizeNameExists(ctx context.Context, db *sql.DB, name string, excludeID int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM sizes WHERE lower(name) = lower(?) AND id <> ?)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking size name: %w", err)
	}
	return exists, nil
}
