// Package shareservice manages public share links and resolves them to
// an owner's content for unauthenticated read access.
package shareservice

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/starford/brainbox/internal/apperr"
	"github.com/starford/brainbox/internal/models"
	"github.com/starford/brainbox/internal/store"
)

// DefaultTokenLength is the share hash length in hex characters.
const DefaultTokenLength = 10

// Service creates, revokes, and resolves share links.
type Service struct {
	store       store.Provider
	tokenLength int
}

// NewService creates a new sharing service. tokenLength of 0 uses
// DefaultTokenLength.
func NewService(st store.Provider, tokenLength int) *Service {
	if tokenLength <= 0 {
		tokenLength = DefaultTokenLength
	}
	return &Service{store: st, tokenLength: tokenLength}
}

// SetSharingResult reports the active hash and whether this call
// created it.
type SetSharingResult struct {
	Hash    string
	Created bool
}

// SetSharing enables or disables the owner's public link.
//
// Enabling is idempotent: an existing link is returned unchanged rather
// than rotated. Disabling deletes the link and succeeds even when none
// exists. Hash uniqueness is not pre-checked; if the storage constraint
// ever fires the conflict is surfaced instead of overwriting another
// owner's link.
func (s *Service) SetSharing(ctx context.Context, userID string, enabled bool) (SetSharingResult, error) {
	if !enabled {
		if err := s.store.DeleteShareLinkByUser(ctx, userID); err != nil {
			return SetSharingResult{}, fmt.Errorf("revoke share link: %w", err)
		}
		return SetSharingResult{}, nil
	}

	existing, err := s.store.GetShareLinkByUser(ctx, userID)
	if err == nil {
		return SetSharingResult{Hash: existing.Hash}, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return SetSharingResult{}, fmt.Errorf("get share link: %w", err)
	}

	hash, err := randomToken(s.tokenLength)
	if err != nil {
		return SetSharingResult{}, fmt.Errorf("generate share hash: %w", err)
	}
	link, err := s.store.CreateShareLink(ctx, models.ShareLink{Hash: hash, UserID: userID})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return SetSharingResult{}, apperr.ErrConflict
		}
		return SetSharingResult{}, fmt.Errorf("create share link: %w", err)
	}
	return SetSharingResult{Hash: link.Hash, Created: true}, nil
}

// PublicBrain is the read-only view behind a share hash.
type PublicBrain struct {
	Username string
	Content  []models.Content
}

// ResolvePublic maps a share hash to the owner's username and full
// content list. An unknown hash, or a hash whose owner no longer
// exists, reports ErrNotFound.
func (s *Service) ResolvePublic(ctx context.Context, hash string) (PublicBrain, error) {
	link, err := s.store.GetShareLinkByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return PublicBrain{}, apperr.ErrNotFound
		}
		return PublicBrain{}, fmt.Errorf("resolve share hash: %w", err)
	}

	user, err := s.store.GetUserByID(ctx, link.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return PublicBrain{}, apperr.ErrNotFound
		}
		return PublicBrain{}, fmt.Errorf("resolve share owner: %w", err)
	}

	content, err := s.store.ListContentByUser(ctx, link.UserID)
	if err != nil {
		return PublicBrain{}, fmt.Errorf("list shared content: %w", err)
	}
	return PublicBrain{Username: user.Username, Content: content}, nil
}

// randomToken draws length lowercase-hex characters from crypto/rand.
func randomToken(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf)[:length], nil
}
