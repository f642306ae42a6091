package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/starford/brainbox/internal/apperr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode failed", slog.String("error", err.Error()))
	}
}

type errResponse struct {
	Message string              `json:"message"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

func errorBody(msg string) errResponse {
	return errResponse{Message: msg}
}

func validationBody(ve *apperr.ValidationError) errResponse {
	return errResponse{Message: "Invalid input", Errors: ve.Fields}
}

// writeInternalError logs the cause server-side and answers with the
// generic 500 body, never exposing internals to the client.
func writeInternalError(w http.ResponseWriter, op string, err error) {
	slog.Error(op, slog.String("error", err.Error()))
	writeJSON(w, http.StatusInternalServerError, errorBody("Internal Server Error"))
}
