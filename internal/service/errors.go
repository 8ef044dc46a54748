package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies a service failure. The API layer maps each kind to a
// single HTTP status; services never see status codes.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error is the typed failure returned by every service operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts a *Error from an error chain.
func AsError(err error) (*Error, bool) {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

func validationErr(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func unauthorizedErr(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func forbiddenErr(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func notFoundErr(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func conflictErr(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func internalErr(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// classifyRepoErr maps storage errors onto service kinds: missing rows
// become not-found with the given message, unique-index violations become
// conflicts, anything else is internal.
func classifyRepoErr(err error, notFoundMessage, conflictMessage string) *Error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFoundErr(notFoundMessage)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflictErr(conflictMessage)
	default:
		return internalErr("storage operation failed", err)
	}
}
