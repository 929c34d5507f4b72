package handler

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/forgo/roster/api/internal/middleware"
	"github.com/forgo/roster/api/internal/model"
)

// Translator converts errors into the API's JSON error envelope. It is the
// single place an error crosses from Go values to the wire, so every
// failure, from validation to a lost database connection, comes out in the
// same shape.
type Translator struct {
	env    string
	logger *slog.Logger
}

// NewTranslator creates a translator for the given environment. Outside
// production, internal errors carry a stack trace in the envelope.
func NewTranslator(env string, logger *slog.Logger) *Translator {
	return &Translator{env: env, logger: logger}
}

// statusFor maps each error kind to its one HTTP status code
func statusFor(kind model.ErrorKind) int {
	switch kind {
	case model.ErrorValidationFailed:
		return http.StatusBadRequest
	case model.ErrorUnauthorized:
		return http.StatusUnauthorized
	case model.ErrorForbidden:
		return http.StatusForbidden
	case model.ErrorNotFound:
		return http.StatusNotFound
	case model.ErrorConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as an error envelope. Unrecognized errors are
// logged with their real cause and reported as a generic internal error so
// nothing about the infrastructure leaks to clients.
func (t *Translator) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	se, ok := model.AsServiceError(err)
	if !ok {
		t.logger.Error("unhandled error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		se = model.NewInternal("An unexpected error occurred")
	}

	details := se.Details
	if details == nil {
		details = map[string]any{}
	}

	envelope := model.ErrorEnvelope{
		Type:    string(se.Kind),
		Message: se.Message,
		Details: details,
	}
	if se.Kind == model.ErrorInternal && t.env != "production" {
		envelope.Stack = string(debug.Stack())
	}

	WriteJSON(w, statusFor(se.Kind), envelope)
}
