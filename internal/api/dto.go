package api

import (
	"github.com/starford/brainbox/internal/models"
)

// SignupRequest is the request body for POST /users/signup and
// POST /users/signin.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SigninResponse carries the bearer token after a successful signin.
type SigninResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// CreateContentRequest is the request body for POST /content.
type CreateContentRequest struct {
	Title string      `json:"title"`
	Body  models.Body `json:"body"`
	Type  string      `json:"type"`
	Tags  []string    `json:"tags,omitempty"`
	Link  string      `json:"link,omitempty"`
}

// ContentResponse wraps a single created item.
type ContentResponse struct {
	Message string         `json:"message"`
	Content models.Content `json:"content"`
}

// ContentListResponse wraps an owner's content listing.
type ContentListResponse struct {
	Content []models.Content `json:"content"`
}

// ShareRequest toggles the public share link.
type ShareRequest struct {
	Share bool `json:"share"`
}

// ShareResponse carries the share hash when sharing is enabled.
type ShareResponse struct {
	Message string `json:"message,omitempty"`
	Hash    string `json:"hash,omitempty"`
}

// PublicBrainResponse is the unauthenticated view behind a share hash.
type PublicBrainResponse struct {
	Username string           `json:"username"`
	Content  []models.Content `json:"content"`
}

// MessageResponse is a bare status message.
type MessageResponse struct {
	Message string `json:"message"`
}
