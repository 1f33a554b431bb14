package utils

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a service-layer failure. Handlers translate kinds to
// HTTP statuses at the request boundary; services never pick status codes.
type ErrorKind int

const (
	KindValidation ErrorKind = iota // malformed or missing required input
	KindAuth                        // missing, invalid, or expired credential
	KindForbidden                   // authenticated but not allowed
	KindNotFound                    // referenced entity absent
	KindConflict                    // state invariant violation
	KindUpstream                    // data store, blob store, or email failure
)

// AppError is the error type returned by the service layer.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func ValidationError(msg string) *AppError {
	return &AppError{Kind: KindValidation, Message: msg}
}

func AuthError(msg string) *AppError {
	return &AppError{Kind: KindAuth, Message: msg}
}

func ForbiddenError(msg string) *AppError {
	return &AppError{Kind: KindForbidden, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg}
}

func ConflictError(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}

// UpstreamError wraps a collaborator failure. The cause is logged server-side
// and never shown to the client.
func UpstreamError(msg string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: msg, Err: err}
}

// KindOf extracts the kind of an error, defaulting to KindUpstream for
// anything that is not an AppError.
func KindOf(err error) ErrorKind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUpstream
}

// HTTPStatus maps an error to the status code used by the JSON envelope.
// Conflicts render as 400 to match the behavior clients already depend on.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
