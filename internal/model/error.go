package model

import (
	"errors"
	"net/http"
)

// ErrorKind classifies a failure for API responses.
type ErrorKind string

// Error kinds exposed in the response envelope.
const (
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindBadRequest          ErrorKind = "BAD_REQUEST"
	KindUnauthorized        ErrorKind = "UNAUTHORIZED"
	KindForbidden           ErrorKind = "FORBIDDEN"
	KindInternalServerError ErrorKind = "INTERNAL_SERVER_ERROR"
)

// StatusCode maps an error kind to its HTTP status.
// Unknown kinds are treated as internal errors.
func (k ErrorKind) StatusCode() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// DomainError is an error with a kind and a message that is safe to show to clients.
type DomainError struct {
	Kind    ErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(kind ErrorKind, message string) *DomainError {
	return &DomainError{
		Kind:    kind,
		Message: message,
	}
}

// KindOf returns the kind of err. Errors that are not domain errors
// fall under BAD_REQUEST.
func KindOf(err error) ErrorKind {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindBadRequest
}

// Common domain errors
var (
	ErrCategoryNotFound    = NewDomainError(KindNotFound, "category not found")
	ErrProductNotFound     = NewDomainError(KindNotFound, "product not found")
	ErrRouteNotFound       = NewDomainError(KindNotFound, "route not found")
	ErrCategoryInUse       = NewDomainError(KindBadRequest, "category is still referenced by products")
	ErrConcurrentUpdate    = NewDomainError(KindBadRequest, "record was modified concurrently, retry the request")
	ErrConstraintViolation = NewDomainError(KindBadRequest, "request violates a data constraint")
	ErrInvalidInput        = NewDomainError(KindBadRequest, "invalid input value")
	ErrUnknownCategory     = NewDomainError(KindBadRequest, "category does not exist")
	ErrUnknownProduct      = NewDomainError(KindBadRequest, "product does not exist")
	ErrMethodNotAllowed    = NewDomainError(KindBadRequest, "method not allowed")
	ErrInternal            = NewDomainError(KindInternalServerError, "internal server error")
)
