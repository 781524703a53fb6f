package domain

import "errors"

var (
	ErrMissingSignupFields = errors.New("all signup fields are required")
	ErrMissingLoginFields  = errors.New("email and password are required")
	ErrInvalidRole         = errors.New("invalid role")
	ErrUserExists          = errors.New("user already exists")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenMissing        = errors.New("token required")
	ErrTokenInvalid        = errors.New("invalid token")
	ErrAdminOnly           = errors.New("admin role required")
)

// InternalError wraps an unexpected failure together with the message that is
// safe to return to the caller. The cause is only ever logged.
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError wraps err with a public message.
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{Message: message, Err: err}
}

func (e *InternalError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
