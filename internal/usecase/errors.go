package usecase

import (
	"errors"
	"strings"
)

// Error classes. Specific errors wrap one of these with %w so handlers can
// map them with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUpstream        = errors.New("upstream error")
	ErrConfiguration   = errors.New("configuration error")
	ErrUnauthenticated = errors.New("unauthenticated")
)

var errorClasses = []error{ErrValidation, ErrNotFound, ErrForbidden, ErrUpstream, ErrConfiguration, ErrUnauthenticated}

// Reason returns the error text without the leading class prefixes, suitable
// for showing to clients: "validation error: Pledge may be at least $5" -> "Pledge may be at least $5".
func Reason(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for trimmed := true; trimmed; {
		trimmed = false
		for _, class := range errorClasses {
			prefix := class.Error() + ": "
			if strings.HasPrefix(msg, prefix) {
				msg = strings.TrimPrefix(msg, prefix)
				trimmed = true
			}
		}
	}
	return msg
}
