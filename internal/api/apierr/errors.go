package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wordrush/wordrush/internal/language"
	"github.com/wordrush/wordrush/internal/model"
	"github.com/wordrush/wordrush/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeRoundNotFound       = "ROUND_NOT_FOUND"
	CodeRoundFinished       = "ROUND_FINISHED"
	CodeNotInRound          = "NOT_IN_ROUND"
	CodeNoPlayers           = "NO_PLAYERS"
	CodeInvalidDimensions   = "INVALID_DIMENSIONS"
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	CodeWordListNotLoaded   = "WORD_LIST_NOT_LOADED"
	CodeUsernameExists      = "USERNAME_EXISTS"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrRoundNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRoundNotFound, "Round not found"}}
	case errors.Is(err, model.ErrRoundFinished):
		return &httpError{http.StatusConflict, APIError{CodeRoundFinished, "Round is already finished"}}
	case errors.Is(err, model.ErrNotInRound):
		return &httpError{http.StatusForbidden, APIError{CodeNotInRound, "You are not in this round"}}
	case errors.Is(err, model.ErrNoPlayers):
		return &httpError{http.StatusBadRequest, APIError{CodeNoPlayers, "Round requires at least one player"}}
	case errors.Is(err, model.ErrInvalidDimensions):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDimensions, "Grid dimensions must be positive"}}
	case errors.Is(err, model.ErrWordListNotLoaded):
		return &httpError{http.StatusConflict, APIError{CodeWordListNotLoaded, "Word list not loaded for this language"}}

	// Map language errors
	case errors.Is(err, language.ErrUnsupportedLanguage):
		return &httpError{http.StatusBadRequest, APIError{CodeUnsupportedLanguage, "Unsupported language"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
