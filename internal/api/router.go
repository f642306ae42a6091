package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/starford/brainbox/internal/authservice"
	"github.com/starford/brainbox/internal/contentservice"
	"github.com/starford/brainbox/internal/shareservice"
)

// NewRouter creates a chi router with all API routes mounted. The
// content and share routes sit behind bearer auth; signup, signin, and
// the public brain view do not.
func NewRouter(auth *authservice.Service, content *contentservice.Service, share *shareservice.Service) chi.Router {
	h := NewHandler(auth, content, share)

	r := chi.NewRouter()

	// Account endpoints (unauthenticated).
	r.Post("/users/signup", h.Signup)
	r.Post("/users/signin", h.Signin)

	// Owner-scoped content endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(auth))
		r.Get("/content", h.ListContent)
		r.Post("/content", h.CreateContent)
		r.Delete("/content/{contentID}", h.DeleteContent)
		r.Post("/content/share", h.ManageShare)
	})

	// Public share view (unauthenticated).
	r.Get("/brain/{shareHash}", h.PublicBrain)

	return r
}
