package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Authentication & Authorization Errors
var (
	ErrMissingToken         = errors.New("missing access token")
	ErrInvalidToken         = errors.New("invalid access token")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInsufficientRole     = errors.New("insufficient role")
	ErrTokenExpired         = errors.New("token expired")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// Authentication & Authorization Error Constructors
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Details:    "Missing access token",
		Field:      "authorization",
	}
}

func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidToken,
		Details:    "Invalid access token",
		Field:      "authorization",
	}
}

func NewTokenExpiredError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrTokenExpired,
		Details:    "Token has expired",
		Field:      "authorization",
	}
}

func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
		Field:      "password",
	}
}

func NewInsufficientRoleError(requiredRole string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInsufficientRole,
		Details:    fmt.Sprintf("Insufficient role. Required: %s", requiredRole),
		Field:      "authorization",
	}
}

// NewConfirmationRequiredError is returned by destructive operations invoked
// without an explicit confirmation.
func NewConfirmationRequiredError(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusPreconditionRequired,
		err:        ErrConfirmationRequired,
		Details:    fmt.Sprintf("Deleting %s requires confirm=true", entity),
		Field:      "confirm",
	}
}

func IsInvalidTokenError(err error) bool {
	return errors.Is(err, ErrInvalidToken)
}

func IsTokenExpiredError(err error) bool {
	return errors.Is(err, ErrTokenExpired)
}

func IsInvalidCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

func IsConfirmationRequired(err error) bool {
	return errors.Is(err, ErrConfirmationRequired)
}
