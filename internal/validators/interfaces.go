// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the ordered list of (field, message) pairs produced by
//     a failed validation, rendered as "field: message; field: message".
//
// This package decouples validation logic from transport layers and storage,
// enabling reusable and testable validation strategies.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named top-level fields.
	Validate(context.Context, any, ...string) error
}
