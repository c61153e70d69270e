package apperrors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies an application error so the presentation layer can map it to an
// HTTP status without matching on message strings.
type Kind int

const (
	KindUnexpected Kind = iota
	KindNotFound
	KindUnauthorized
	KindOwnership
	KindConflict
	KindValidation
)

// Error is the error type returned by every application service.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Ownership(message string) *Error {
	return &Error{Kind: KindOwnership, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Unexpected(message string, err error) *Error {
	return &Error{Kind: KindUnexpected, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Plain errors count as unexpected.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnexpected
}

// HTTPStatus maps an error kind to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindOwnership:
		return fiber.StatusForbidden
	case KindConflict:
		return fiber.StatusConflict
	case KindValidation:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
