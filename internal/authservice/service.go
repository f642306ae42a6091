// Package authservice handles registration, credential checks, and
// bearer token issuance and validation.
package authservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/starford/brainbox/internal/apperr"
	"github.com/starford/brainbox/internal/models"
	"github.com/starford/brainbox/internal/store"
)

// Service verifies credentials against the store and mints JWTs.
type Service struct {
	store      store.Provider
	secretKey  []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// NewService creates a new auth service. tokenTTL must be positive;
// bcryptCost of 0 falls back to the bcrypt default.
func NewService(st store.Provider, secretKey string, tokenTTL time.Duration, bcryptCost int) (*Service, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("authservice: secret key is required")
	}
	if tokenTTL <= 0 {
		return nil, fmt.Errorf("authservice: token ttl must be positive")
	}
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		store:      st,
		secretKey:  []byte(secretKey),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}, nil
}

// Register validates the credentials, hashes the password, and persists
// a new user. It does not sign the caller in.
func (s *Service) Register(ctx context.Context, username, password string) (models.User, error) {
	// Bounds are in characters, not bytes, so multibyte credentials
	// are measured the same as ASCII ones.
	err := apperr.FromOzzo(validation.Errors{
		"username": validation.Validate(username, validation.Required, validation.RuneLength(3, 0)),
		"password": validation.Validate(password, validation.Required, validation.RuneLength(6, 0)),
	}.Filter())
	if err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.store.CreateUser(ctx, models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return models.User{}, apperr.ErrConflict
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate checks the credentials and returns a signed bearer token
// embedding the user's id. Unknown username and wrong password are kept
// distinct so the API can answer 404 and 401 respectively.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", apperr.ErrNotFound
		}
		return "", fmt.Errorf("get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperr.ErrInvalidCredentials
	}

	return s.generateToken(user.ID)
}

// Claims carries the authenticated user id alongside the registered
// JWT claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

func (s *Service) generateToken(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ResolveToken validates a bearer token and returns the embedded user
// id. Any parse, signature, or expiry failure maps to ErrInvalidToken.
func (s *Service) ResolveToken(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", apperr.ErrInvalidToken
	}
	return claims.UserID, nil
}
