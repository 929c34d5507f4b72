package model

import "errors"

// ErrorKind identifies a domain failure. The set is closed: every failure a
// service surfaces is one of these, and the HTTP boundary maps each kind to
// exactly one status code.
type ErrorKind string

const (
	ErrorValidationFailed ErrorKind = "VALIDATION_FAILED"
	ErrorNotFound         ErrorKind = "NOT_FOUND"
	ErrorConflict         ErrorKind = "CONFLICT"
	ErrorForbidden        ErrorKind = "FORBIDDEN"
	ErrorUnauthorized     ErrorKind = "UNAUTHORIZED"
	ErrorInternal         ErrorKind = "INTERNAL_SERVER_ERROR"
)

// ServiceError is a typed domain failure with a human-readable message and
// optional structured details. Messages are for humans; callers branch on
// Kind, never on message text.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Details map[string]any
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// NewValidationFailed creates a ValidationFailed error carrying per-field
// violation details keyed by input section (params, query, body).
func NewValidationFailed(message string, details map[string]any) *ServiceError {
	return &ServiceError{Kind: ErrorValidationFailed, Message: message, Details: details}
}

// NewNotFound creates a NotFound error
func NewNotFound(message string) *ServiceError {
	return &ServiceError{Kind: ErrorNotFound, Message: message}
}

// NewConflict creates a Conflict error
func NewConflict(message string) *ServiceError {
	return &ServiceError{Kind: ErrorConflict, Message: message}
}

// NewForbidden creates a Forbidden error
func NewForbidden(message string) *ServiceError {
	return &ServiceError{Kind: ErrorForbidden, Message: message}
}

// NewUnauthorized creates an Unauthorized error
func NewUnauthorized(message string) *ServiceError {
	return &ServiceError{Kind: ErrorUnauthorized, Message: message}
}

// NewInternal creates an InternalError
func NewInternal(message string) *ServiceError {
	return &ServiceError{Kind: ErrorInternal, Message: message}
}

// AsServiceError extracts a ServiceError from an error chain.
func AsServiceError(err error) (*ServiceError, bool) {
	var se *ServiceError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsKind reports whether err is a ServiceError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	se, ok := AsServiceError(err)
	return ok && se.Kind == kind
}

// ErrorEnvelope is the wire shape of every error response. Details is always
// present, even when empty, so clients can branch on type without probing.
type ErrorEnvelope struct {
	Type    string         `json:"type"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
	Stack   string         `json:"stack,omitempty"`
}
