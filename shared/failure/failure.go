package failure

import (
	"errors"
)

// Kind classifies a failure so the presentation layer can decide how to
// surface it: field-scoped correction, not-found message, retry prompt.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
	KindUnauthorized
)

// Failure is a wrapper for error messages carrying a failure kind.
type Failure struct {
	Code    Kind   `json:"code"`
	Message string `json:"message"`
}

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure for invalid input, with the message
// derived from an error interface.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    KindBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure for invalid input with the
// message set from a string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    KindBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure for rejected credentials.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    KindUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure for a store write or read that did not
// succeed, with the message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure for an absent entity.
func NotFound(entityName string) error {
	return &Failure{
		Code:    KindNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure for duplicate or contended state, such as a
// unique-constraint violation or a fully booked trip.
func Conflict(message string) error {
	return &Failure{
		Code:    KindConflict,
		Message: message,
	}
}

// GetKind returns the failure kind of an error interface.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return KindInternal
}

func IsBadRequest(err error) bool {
	return GetKind(err) == KindBadRequest
}

func IsNotFound(err error) bool {
	return GetKind(err) == KindNotFound
}

func IsConflict(err error) bool {
	return GetKind(err) == KindConflict
}

func IsUnauthorized(err error) bool {
	return GetKind(err) == KindUnauthorized
}
