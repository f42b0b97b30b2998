package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

// FieldError is a single failed rule.
type FieldError struct {
	// Field is the JSON path of the offending value, e.g. "phones[0].number".
	Field string
	// Message is the user-facing description of the rule.
	Message string
}

// ValidationError aggregates every failed field of one input value in
// declaration order.
type ValidationError struct {
	Fields []FieldError
}

// Error joins the failures as "field: message" pairs separated by "; ".
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return strings.Join(msgs, "; ")
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}
