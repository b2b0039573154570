package domain

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountDeactivated = errors.New("account is deactivated")
var ErrVideoNotFound = errors.New("video not found")

// ValidationError carries the message shown to the caller for malformed or
// missing input. Kept as a typed variant so the core never deals in HTTP
// status codes; the transport layer maps it to a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// NewValidationError wraps a caller-facing validation message.
func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

// AsValidation reports whether err is a ValidationError and returns its message.
func AsValidation(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Msg, true
	}
	return "", false
}
