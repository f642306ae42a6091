package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/starford/brainbox/internal/apperr"
	"github.com/starford/brainbox/internal/authservice"
	"github.com/starford/brainbox/internal/contentservice"
	"github.com/starford/brainbox/internal/shareservice"
)

// Handler holds API route handlers.
type Handler struct {
	auth    *authservice.Service
	content *contentservice.Service
	share   *shareservice.Service
}

// NewHandler creates a new Handler.
func NewHandler(auth *authservice.Service, content *contentservice.Service, share *shareservice.Service) *Handler {
	return &Handler{auth: auth, content: content, share: share}
}

// Signup handles POST /users/signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON body"))
		return
	}
	if _, err := h.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		if ve, ok := apperr.AsValidation(err); ok {
			writeJSON(w, http.StatusBadRequest, validationBody(ve))
			return
		}
		if errors.Is(err, apperr.ErrConflict) {
			writeJSON(w, http.StatusConflict, errorBody("A resource with this value already exists."))
			return
		}
		writeInternalError(w, "signup failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User created successfully"})
}

// Signin handles POST /users/signin.
func (h *Handler) Signin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON body"))
		return
	}
	token, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("User not found"))
		case errors.Is(err, apperr.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, errorBody("Invalid credentials"))
		default:
			writeInternalError(w, "signin failed", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, SigninResponse{Message: "Login successful", Token: token})
}

// ListContent handles GET /content.
func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.List(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		writeInternalError(w, "list content failed", err)
		return
	}
	writeJSON(w, http.StatusOK, ContentListResponse{Content: items})
}

// CreateContent handles POST /content.
func (h *Handler) CreateContent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON body"))
		return
	}
	item, err := h.content.Create(r.Context(), userIDFrom(r.Context()), contentservice.CreateInput{
		Title: req.Title,
		Body:  req.Body,
		Type:  req.Type,
		Tags:  req.Tags,
		Link:  req.Link,
	})
	if err != nil {
		if ve, ok := apperr.AsValidation(err); ok {
			writeJSON(w, http.StatusBadRequest, validationBody(ve))
			return
		}
		writeInternalError(w, "create content failed", err)
		return
	}
	writeJSON(w, http.StatusCreated, ContentResponse{Message: "Content added", Content: item})
}

// DeleteContent handles DELETE /content/{contentID}.
//
// A missing item and an item owned by another user get the same 404 so
// the endpoint cannot be used to probe for other users' content.
func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "contentID")
	if err := h.content.Delete(r.Context(), userIDFrom(r.Context()), contentID); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Content not found or you do not have permission to delete"))
			return
		}
		writeInternalError(w, "delete content failed", err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Content deleted"})
}

// ManageShare handles POST /content/share.
func (h *Handler) ManageShare(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req ShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("Invalid JSON body"))
		return
	}
	res, err := h.share.SetSharing(r.Context(), userIDFrom(r.Context()), req.Share)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			writeJSON(w, http.StatusConflict, errorBody("A resource with this value already exists."))
			return
		}
		writeInternalError(w, "manage share failed", err)
		return
	}
	switch {
	case !req.Share:
		writeJSON(w, http.StatusOK, ShareResponse{Message: "Share link removed"})
	case res.Created:
		writeJSON(w, http.StatusCreated, ShareResponse{Message: "Share link created", Hash: res.Hash})
	default:
		writeJSON(w, http.StatusOK, ShareResponse{Hash: res.Hash})
	}
}

// PublicBrain handles GET /brain/{shareHash} without authentication.
func (h *Handler) PublicBrain(w http.ResponseWriter, r *http.Request) {
	hash := chi.URLParam(r, "shareHash")
	brain, err := h.share.ResolvePublic(r.Context(), hash)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("Invalid or expired link"))
			return
		}
		writeInternalError(w, "resolve public brain failed", err)
		return
	}
	writeJSON(w, http.StatusOK, PublicBrainResponse{Username: brain.Username, Content: brain.Content})
}
