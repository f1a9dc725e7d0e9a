package usecase

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/docetangerina/estoque/internal/auth"
	"github.com/docetangerina/estoque/internal/model"
	"github.com/docetangerina/estoque/internal/session"
	"github.com/docetangerina/estoque/internal/store"
)

// Users implements registration, login and profile use cases. The
// encrypter owns password hashing; this layer never inspects hashes.
type Users struct {
	db  *sql.DB
	enc auth.Encrypter
	log *zap.Logger
}

func NewUsers(db *sql.DB, enc auth.Encrypter, log *zap.Logger) *Users {
	return &Users{db: db, enc: enc, log: log}
}

// Register validates the fields, rejects duplicate emails, hashes the
// password and persists. Email is stored lowercase, name title-cased.
func (u *Users) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = NormalizeName(name)
	email = NormalizeEmail(email)

	if err := model.ValidateUser(name, email, password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	exists, err := store.EmailExists(ctx, u.db, email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := u.enc.Hash(password)
	if err != nil {
		return nil, err
	}

	created, err := store.CreateUser(ctx, u.db, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	u.log.Info("user registered", zap.Int64("id", created.ID), zap.String("email", created.Email))
	return created, nil
}

// Login looks up the user by normalized email and verifies the
// password. Any mismatch, missing row or wrong password, is the same
// ErrInvalidCredentials.
func (u *Users) Login(ctx context.Context, email, password string) (*model.User, error) {
	user, err := store.GetUserByEmail(ctx, u.db, NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := u.enc.Compare(user.PasswordHash, password); err != nil {
		u.log.Warn("login failed", zap.String("email", user.Email))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Update replaces the user's profile. The password is the plaintext
// replacement and is re-hashed; email uniqueness excludes the user's
// own row. A missing row fails with ErrNotFound.
func (u *Users) Update(ctx context.Context, user model.User, password string) (*model.User, error) {
	normalized := model.User{
		ID:    user.ID,
		Name:  NormalizeName(user.Name),
		Email: NormalizeEmail(user.Email),
		Image: user.Image,
	}

	if err := model.ValidateUser(normalized.Name, normalized.Email, password); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	existing, err := store.GetUser(ctx, u.db, normalized.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	exists, err := store.EmailExists(ctx, u.db, normalized.Email, normalized.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	hash, err := u.enc.Hash(password)
	if err != nil {
		return nil, err
	}
	normalized.PasswordHash = hash

	if err := store.UpdateUser(ctx, u.db, normalized); err != nil {
		return nil, err
	}

	u.log.Info("user updated", zap.Int64("id", normalized.ID))
	return &normalized, nil
}

// GetByID returns a user, or nil when absent.
func (u *Users) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return store.GetUser(ctx, u.db, id)
}

// Current resolves the session's user. An absent session yields nil
// without error; a stored id whose row no longer exists clears the
// stale session and also yields nil.
func (u *Users) Current(ctx context.Context, s *session.Session) (*model.User, error) {
	id, ok := s.UserID()
	if !ok {
		return nil, nil
	}

	user, err := store.GetUser(ctx, u.db, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.Clear()
		return nil, nil
	}
	return user, nil
}
