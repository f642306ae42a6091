package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/starford/brainbox/internal/apperr"
	"github.com/starford/brainbox/internal/models"
)

// CreateContent inserts a new content item and stamps its timestamps.
func (db *DB) CreateContent(ctx context.Context, item models.Content) (models.Content, error) {
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if item.Tags == nil {
		item.Tags = []string{}
	}

	bodyJSON, err := json.Marshal(item.Body)
	if err != nil {
		return models.Content{}, fmt.Errorf("store: encode body: %w", err)
	}
	tagsJSON, err := json.Marshal(item.Tags)
	if err != nil {
		return models.Content{}, fmt.Errorf("store: encode tags: %w", err)
	}

	_, err = db.conn.ExecContext(ctx, `
		INSERT INTO content (id, title, body, type, tags, link, user_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, item.Title, string(bodyJSON), item.Type, string(tagsJSON), item.Link, item.UserID, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		return models.Content{}, fmt.Errorf("store: create content: %w", mapConstraint(err))
	}
	return item, nil
}

// ListContentByUser returns all items owned by userID, newest first.
// rowid breaks ties for items created within the same timestamp tick.
func (db *DB) ListContentByUser(ctx context.Context, userID string) ([]models.Content, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, title, body, type, tags, link, user_id, created_at, updated_at
		FROM content
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("store: list content: %w", err)
	}
	defer rows.Close()

	items := []models.Content{}
	for rows.Next() {
		var (
			item     models.Content
			bodyJSON string
			tagsJSON string
		)
		if err := rows.Scan(&item.ID, &item.Title, &bodyJSON, &item.Type, &tagsJSON,
			&item.Link, &item.UserID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("store: scan content: %w", err)
		}
		if err := json.Unmarshal([]byte(bodyJSON), &item.Body); err != nil {
			return nil, fmt.Errorf("store: decode body: %w", err)
		}
		if err := json.Unmarshal([]byte(tagsJSON), &item.Tags); err != nil {
			return nil, fmt.Errorf("store: decode tags: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteContent removes the item only when it exists and belongs to
// userID. Both "missing" and "owned by someone else" report
// apperr.ErrNotFound so callers cannot probe other users' items.
func (db *DB) DeleteContent(ctx context.Context, id, userID string) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM content WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("store: delete content: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete content: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
