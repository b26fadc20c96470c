package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound                  = errors.New("not found")
	ErrDatabaseQuery             = errors.New("database query failed")
	ErrDatabaseConnection        = errors.New("database connection failed")
	ErrUniqueConstraintViolation = errors.New("unique constraint violation")
	ErrForeignKeyConstraint      = errors.New("foreign key constraint violation")
)

func NewNotFound(entity string) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusNotFound,
		err:        fmt.Errorf("%s %w", entity, ErrNotFound),
	}
}

// driverFailures maps fragments of Postgres error text to a status. The pgx
// driver surfaces constraint names only through the message.
var driverFailures = []struct {
	fragment string
	status   int
	sentinel error
	details  string
}{
	{"duplicate key", http.StatusConflict, ErrUniqueConstraintViolation, ""},
	{"foreign key constraint", http.StatusBadRequest, ErrForeignKeyConstraint, "The referenced resource does not exist or cannot be linked"},
	{"connection", http.StatusServiceUnavailable, ErrDatabaseConnection, "Unable to connect to database"},
}

// NewDatabaseError classifies a repository failure. An ApiErr from a lower
// layer is returned unchanged.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	var apiErr *ApiErr
	if errors.As(cause, &apiErr) {
		return apiErr
	}

	out := &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    fmt.Sprintf("Failed to %s %s", operation, entity),
		Cause:      cause,
	}
	switch {
	case cause == nil:
		return out
	case errors.Is(cause, gorm.ErrRecordNotFound):
		out.StatusCode = http.StatusNotFound
		out.err = fmt.Errorf("%s %w", entity, ErrNotFound)
		return out
	}

	msg := cause.Error()
	for _, f := range driverFailures {
		if !strings.Contains(msg, f.fragment) {
			continue
		}
		out.StatusCode = f.status
		out.err = fmt.Errorf("%s: %w", entity, f.sentinel)
		if f.details != "" {
			out.Details = f.details
		}
		break
	}
	return out
}
