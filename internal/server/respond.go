package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mestakip/tiretrack/pkg/apperr"
)

// Response is the JSON envelope shared by every endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// RespondJSON writes a JSON response
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// RespondError writes an error response
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, Response{
		Success: false,
		Error:   message,
	})
}

// RespondDomainError maps the error taxonomy to HTTP status codes
func RespondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrPermissionDenied):
		RespondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrValidation):
		RespondError(w, http.StatusBadRequest, err.Error())
	default:
		RespondError(w, http.StatusInternalServerError, err.Error())
	}
}

// StatusRecorder wraps http.ResponseWriter to capture the status code for
// metrics middleware
type StatusRecorder struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *StatusRecorder) WriteHeader(code int) {
	rw.StatusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// NewStatusRecorder wraps w defaulting to 200
func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{ResponseWriter: w, StatusCode: http.StatusOK}
}
