package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/starford/brainbox/internal/apperr"
	"github.com/starford/brainbox/internal/models"
)

// CreateUser inserts a new user row. A duplicate username surfaces as
// apperr.ErrConflict via the UNIQUE constraint.
func (db *DB) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	user.CreatedAt = time.Now().UTC()
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO users (id, username, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if mapped := mapConstraint(err); errors.Is(mapped, apperr.ErrConflict) {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("store: create user: %w", err)
	}
	return user, nil
}

// GetUserByUsername looks a user up by exact (case-sensitive) username.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	return db.getUser(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE username = ?`, username)
}

// GetUserByID looks a user up by id.
func (db *DB) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return db.getUser(ctx, `SELECT id, username, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (db *DB) getUser(ctx context.Context, query, arg string) (models.User, error) {
	var u models.User
	err := db.conn.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("store: get user: %w", err)
	}
	return u, nil
}
