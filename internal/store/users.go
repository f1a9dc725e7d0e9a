package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/docetangerina/estoque/internal/model"
)

// CreateUser inserts a user and returns the stored row.
func CreateUser(ctx context.Context, db *sql.DB, u model.User) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, image) VALUES (?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.Image,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID, or nil when absent.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	u := &model.User{}
	var image sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, image FROM users WHERE id = ?`, id,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	u.Image = image.String
	return u, nil
}

// GetUserByEmail returns a user by email (caller normalizes), or nil
// when absent.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	u := &model.User{}
	var image sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, image FROM users WHERE lower(email) = lower(?)`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	u.Image = image.String
	return u, nil
}

// UpdateUser replaces a user row.
func UpdateUser(ctx context.Context, db *sql.DB, u model.User) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, password_hash = ?, image = ? WHERE id = ?`,
		u.Name, u.Email, u.PasswordHash, u.Image, u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

// EmailExists reports whether the email is already registered, matched
// case-insensitively, skipping excludeID.
func EmailExists(ctx context.Context, db *sql.DB, email string, excludeID int64) (bool, error) {
	var exists bool
	err := db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower(?) AND id <> ?)`,
		email, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking email: %w", err)
	}
	return exists, nil
}
