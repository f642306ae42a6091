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

// CreateShareLink inserts a share link row. A second active link for
// the same owner, or a colliding hash, fires the UNIQUE constraint and
// surfaces as apperr.ErrConflict rather than overwriting anything.
func (db *DB) CreateShareLink(ctx context.Context, link models.ShareLink) (models.ShareLink, error) {
	link.CreatedAt = time.Now().UTC()
	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO share_links (hash, user_id, created_at)
		VALUES (?, ?, ?)
	`, link.Hash, link.UserID, link.CreatedAt)
	if err != nil {
		if mapped := mapConstraint(err); errors.Is(mapped, apperr.ErrConflict) {
			return models.ShareLink{}, mapped
		}
		return models.ShareLink{}, fmt.Errorf("store: create share link: %w", err)
	}
	return link, nil
}

// GetShareLinkByUser returns the owner's active link, if any.
func (db *DB) GetShareLinkByUser(ctx context.Context, userID string) (models.ShareLink, error) {
	return db.getShareLink(ctx, `SELECT hash, user_id, created_at FROM share_links WHERE user_id = ?`, userID)
}

// GetShareLinkByHash resolves a public hash to its row.
func (db *DB) GetShareLinkByHash(ctx context.Context, hash string) (models.ShareLink, error) {
	return db.getShareLink(ctx, `SELECT hash, user_id, created_at FROM share_links WHERE hash = ?`, hash)
}

func (db *DB) getShareLink(ctx context.Context, query, arg string) (models.ShareLink, error) {
	var link models.ShareLink
	err := db.conn.QueryRowContext(ctx, query, arg).Scan(&link.Hash, &link.UserID, &link.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ShareLink{}, apperr.ErrNotFound
	}
	if err != nil {
		return models.ShareLink{}, fmt.Errorf("store: get share link: %w", err)
	}
	return link, nil
}

// DeleteShareLinkByUser revokes the owner's link. Deleting when no link
// exists is a no-op, not an error.
func (db *DB) DeleteShareLinkByUser(ctx context.Context, userID string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM share_links WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("store: delete share link: %w", err)
	}
	return nil
}
