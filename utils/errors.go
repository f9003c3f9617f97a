package utils

import (
	"errors"
	"fmt"
)

// ErrNoPermission is returned when the session role does not meet the
// endpoint's required tier.
var ErrNoPermission = errors.New("you do not have permission")

// NotFoundError identifies a referenced entity that does not exist. It is
// raised by explicit pre-checks rather than surfaced as a foreign key
// failure from the store.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError is a domain-level input rejection, distinct from gin
// binding failures.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
