// Package contentservice implements owner-scoped CRUD over content items.
package contentservice

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/starford/brainbox/internal/apperr"
	"github.com/starford/brainbox/internal/models"
	"github.com/starford/brainbox/internal/store"
)

// Service coordinates content operations against the store. Every
// operation is scoped to the owner id resolved by the auth layer.
type Service struct {
	store store.Provider
}

// NewService creates a new content service.
func NewService(st store.Provider) *Service {
	return &Service{store: st}
}

// CreateInput is the caller-supplied portion of a new content item.
type CreateInput struct {
	Title string
	Body  models.Body
	Type  string
	Tags  []string
	Link  string
}

// validLink accepts any absolute URL (scheme plus host). An empty
// string never reaches this rule; Create normalizes it to absent first.
func validLink(value any) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("must be a valid URL")
	}
	return nil
}

// Create validates the input and persists a new item owned by userID.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (models.Content, error) {
	verrs := validation.Errors{
		"title": validation.Validate(in.Title, validation.Required),
		"body": validation.Validate(in.Body, validation.By(func(any) error {
			if in.Body.Empty() {
				return fmt.Errorf("cannot be blank")
			}
			return nil
		})),
		"type": validation.Validate(in.Type, validation.Required),
	}
	// An empty link means "no link"; only a present one must parse.
	if in.Link != "" {
		verrs["link"] = validation.Validate(in.Link, validation.By(validLink))
	}
	if err := apperr.FromOzzo(verrs.Filter()); err != nil {
		return models.Content{}, err
	}

	item, err := s.store.CreateContent(ctx, models.Content{
		ID:     uuid.NewString(),
		Title:  in.Title,
		Body:   in.Body,
		Type:   in.Type,
		Tags:   in.Tags,
		Link:   in.Link,
		UserID: userID,
	})
	if err != nil {
		return models.Content{}, fmt.Errorf("create content: %w", err)
	}
	return item, nil
}

// List returns all of the owner's items, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]models.Content, error) {
	items, err := s.store.ListContentByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	return items, nil
}

// Delete removes the item when it exists and is owned by userID. A
// missing item and someone else's item both report ErrNotFound.
func (s *Service) Delete(ctx context.Context, userID, contentID string) error {
	err := s.store.DeleteContent(ctx, contentID, userID)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}
