// Package api implements the Brainbox REST API using chi.
package api

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenResolver validates a bearer token and returns the user id it
// embeds.
type TokenResolver interface {
	ResolveToken(token string) (string, error)
}

// AuthMiddleware returns middleware that requires a valid
// "Authorization: Bearer <token>" header. The scheme match is
// case-insensitive. A missing or malformed header answers 401; a header
// whose token fails resolution answers 403.
func AuthMiddleware(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				writeJSON(w, http.StatusUnauthorized, errorBody("Authorization header is missing or malformed"))
				return
			}
			userID, err := resolver.ResolveToken(token)
			if err != nil {
				writeJSON(w, http.StatusForbidden, errorBody("Invalid or expired token"))
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
		})
	}
}

// bearerToken extracts the credential from a Bearer authorization
// header, tolerating scheme casing and extra whitespace.
func bearerToken(header string) (string, bool) {
	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(rest)
	if token == "" {
		return "", false
	}
	return token, true
}

// userIDFrom returns the authenticated user id stored by AuthMiddleware.
func userIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
