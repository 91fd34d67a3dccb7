package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

// NewDatabaseError wraps a storage failure with the operation and entity it
// happened on, mapping well-known causes to their HTTP status.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("failed to %s %s", operation, entity)

	if cause != nil {
		switch {
		case errors.Is(cause, gorm.ErrRecordNotFound):
			return &ApiErr{
				StatusCode: http.StatusNotFound,
				err:        fmt.Errorf("%s: %w", entity, ErrNotFound),
				Details:    details,
				Cause:      cause,
			}
		case errors.Is(cause, gorm.ErrDuplicatedKey),
			strings.Contains(cause.Error(), "duplicate key"),
			strings.Contains(cause.Error(), "UNIQUE constraint"):
			return &ApiErr{
				StatusCode: http.StatusConflict,
				err:        fmt.Errorf("%s: %w", entity, ErrConflict),
				Details:    details,
				Cause:      cause,
			}
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        fmt.Errorf("%s: %w", details, ErrInternal),
		Cause:      cause,
	}
}
