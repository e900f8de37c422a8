package errors

import (
	"errors"
	"fmt"
)

// Shared error taxonomy. Domains wrap these so handlers can map any
// service failure to an HTTP status without knowing the domain.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUnavailable = errors.New("store unavailable")
	ErrInternal    = errors.New("internal failure")
)

// DomainError carries a user-facing message plus the taxonomy kind.
type DomainError struct {
	Kind    error  // one of the sentinels above
	Message string // safe to return to the client
	Err     error  // underlying cause, logged only

	// Status overrides the default HTTP status for the kind. The trade
	// group reports business-rule conflicts as 400 while cart and review
	// duplicates are 409; both are ErrConflict.
	Status int
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Kind }

func Validation(message string) *DomainError {
	return &DomainError{Kind: ErrValidation, Message: message}
}

func NotFound(message string) *DomainError {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

func Conflict(message string) *DomainError {
	return &DomainError{Kind: ErrConflict, Message: message}
}

// BusinessRule is a constraint violation reported as 400 rather than 409.
func BusinessRule(message string) *DomainError {
	return &DomainError{Kind: ErrConflict, Message: message, Status: 400}
}

func Unavailable(message string, err error) *DomainError {
	return &DomainError{Kind: ErrUnavailable, Message: message, Err: err}
}

func Internal(message string, err error) *DomainError {
	return &DomainError{Kind: ErrInternal, Message: message, Err: err}
}

// Message extracts the client-safe message from an error, falling back
// to a generic one for unexpected failures.
func Message(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Message
	}
	return "Internal Server Error"
}
