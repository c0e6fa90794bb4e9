package service

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failure for the HTTP boundary.
type ErrorKind string

const (
	ErrKindMissingIdentifier  ErrorKind = "MISSING_IDENTIFIER"
	ErrKindAuthentication     ErrorKind = "AUTHENTICATION_ERROR"
	ErrKindQuotaExceeded      ErrorKind = "QUOTA_EXCEEDED"
	ErrKindCatalogUnavailable ErrorKind = "CATALOG_UNAVAILABLE"
)

// Sentinel errors, one per kind, for use with errors.Is.
var (
	ErrMissingIdentifier  = &kindError{kind: ErrKindMissingIdentifier, msg: "Recipe ID is required."}
	ErrAuthentication     = &kindError{kind: ErrKindAuthentication, msg: "authentication with the recipe catalog failed, check the Spoonacular API key"}
	ErrQuotaExceeded      = &kindError{kind: ErrKindQuotaExceeded, msg: "the daily Spoonacular API quota has probably been used up"}
	ErrCatalogUnavailable = &kindError{kind: ErrKindCatalogUnavailable, msg: "could not retrieve data from the recipe catalog"}
)

type kindError struct {
	kind ErrorKind
	msg  string
}

func (e *kindError) Error() string { return e.msg }

// Kind returns the error's classification.
func (e *kindError) Kind() ErrorKind { return e.kind }

// CatalogError is a failed catalog call, classified once at the adapter.
type CatalogError struct {
	Kind ErrorKind
	// Op is the adapter operation, "search" or "detail".
	Op string
	// Status is the catalog's HTTP status, 0 when no response arrived.
	Status  int
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("catalog %s failed with status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("catalog %s failed: %s", e.Op, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *CatalogError) Unwrap() error { return e.Cause }

// Is matches the sentinel for the error's kind.
func (e *CatalogError) Is(target error) bool {
	var k *kindError
	if errors.As(target, &k) {
		return k.kind == e.Kind
	}
	return false
}

// TranslateCatalogError maps a catalog failure to a CatalogError. status is
// the HTTP status of the catalog response, or 0 for transport failures.
// Every input yields exactly one of the three catalog kinds.
func TranslateCatalogError(op string, status int, cause error) *CatalogError {
	var sentinel *kindError
	switch status {
	case http.StatusUnauthorized:
		sentinel = ErrAuthentication
	case http.StatusPaymentRequired:
		sentinel = ErrQuotaExceeded
	default:
		sentinel = ErrCatalogUnavailable
	}

	message := sentinel.msg
	if sentinel == ErrCatalogUnavailable && op == opDetail {
		message = "could not retrieve recipe details from the recipe catalog"
	}

	return &CatalogError{
		Kind:    sentinel.kind,
		Op:      op,
		Status:  status,
		Message: message,
		Cause:   cause,
	}
}

// KindOf returns the kind of a domain error and false for anything else.
func KindOf(err error) (ErrorKind, bool) {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	var k *kindError
	if errors.As(err, &k) {
		return k.kind, true
	}
	return "", false
}
