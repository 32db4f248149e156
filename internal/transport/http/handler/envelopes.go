package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/job-board-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ValidationEnvelope lists every violated input rule.
type ValidationEnvelope struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

// SignupEnvelope wraps a successful registration.
type SignupEnvelope struct {
	Message string                `json:"message"`
	Company *domain.PublicCompany `json:"company"`
	Token   string                `json:"token"`
}

// LoginEnvelope wraps a successful login.
type LoginEnvelope struct {
	Token     string `json:"token"`
	CompanyID string `json:"companyId"`
}

// JobEnvelope wraps a created job.
type JobEnvelope struct {
	Message string      `json:"message"`
	Job     *domain.Job `json:"job"`
}

// EmailEnvelope wraps a sent-email acknowledgment.
type EmailEnvelope struct {
	Message string           `json:"message"`
	Info    *domain.EmailLog `json:"info,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Message: msg})
}

// httpError maps domain errors to HTTP status codes. Unrecognized errors
// become a 500 with a generic message; the detail stays in the server log.
func httpError(w http.ResponseWriter, err error) {
	if ve, ok := domain.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, ValidationEnvelope{Message: "Validation errors", Errors: ve.Messages})
		return
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, firstLine(err))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusBadRequest, firstLine(err))
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, firstLine(err))
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, firstLine(err))
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, firstLine(err))
	default:
		slog.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

// firstLine strips the wrapped sentinel suffix ("...: not found") from the
// client-facing message.
func firstLine(err error) string {
	msg := err.Error()
	if u := errors.Unwrap(err); u != nil {
		suffix := ": " + u.Error()
		if len(msg) > len(suffix) && msg[len(msg)-len(suffix):] == suffix {
			return msg[:len(msg)-len(suffix)]
		}
	}
	return msg
}
