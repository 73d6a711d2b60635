package query

import "fmt"

// Client-facing validation messages.
const (
	MsgNotPositive       = "page and limit must be positive"
	MsgLimitExceeded     = "limit exceeds maximum"
	MsgNotInteger        = "page and limit must be integers"
	MsgCursorNotInteger  = "cursor and limit must be integers"
	MsgCursorNegative    = "cursor must not be negative"
	MsgCursorLimit       = "limit must be positive"
	MsgUnsupportedSort   = "sortBy must be one of id, name, price, stock"
	MsgUnsupportedOrder  = "order must be asc or desc"
	MsgInvalidParameters = "invalid query parameters"
)

// ValidationError reports a rejected request. It is always recoverable by
// the caller correcting its input.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
