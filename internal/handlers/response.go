package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/logger"
	"github.com/sbilibin2017/espresso-tracker/internal/middlewares"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
	"github.com/sbilibin2017/espresso-tracker/internal/services"
)

// ErrorResponse is the body of every error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Bean not found
	Error string `json:"error"`
}

// MessageResponse is returned by operations without a resource to show
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Bean deleted successfully
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to responses. notFound is the
// message used for ErrNotFound.
func writeServiceError(w http.ResponseWriter, err error, notFound string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "Username or email already registered")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Incorrect username or password")
	case errors.Is(err, services.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
	default:
		logger.Log.Errorw("internal server error", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// actingUser returns the user resolved by the auth middleware, answering 401
// when there is none.
func actingUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, ok := middlewares.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return user, true
}

// pathID parses the {id} URL parameter. An id that cannot exist is reported
// like one that does not.
func pathID(w http.ResponseWriter, r *http.Request, notFound string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return uuid.Nil, false
	}
	return id, true
}
