package store

import (
	"context"

	"github.com/starford/brainbox/internal/models"
)

// Provider defines the persistence operations the services depend on.
// Consumers should depend on this interface rather than the concrete
// *DB type to facilitate testing with mocks.
type Provider interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)

	CreateContent(ctx context.Context, item models.Content) (models.Content, error)
	ListContentByUser(ctx context.Context, userID string) ([]models.Content, error)
	DeleteContent(ctx context.Context, id, userID string) error

	CreateShareLink(ctx context.Context, link models.ShareLink) (models.ShareLink, error)
	GetShareLinkByUser(ctx context.Context, userID string) (models.ShareLink, error)
	GetShareLinkByHash(ctx context.Context, hash string) (models.ShareLink, error)
	DeleteShareLinkByUser(ctx context.Context, userID string) error

	Close() error
}

// Verify *DB satisfies Provider at compile time.
var _ Provider = (*DB)(nil)
