package store

// ErrorClassification is the result type returned by [ErrorClassificator].
// It indicates whether a failed database operation should be retried,
// abandoned, or reported as a uniqueness conflict.
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable

	// Conflict indicates a unique constraint violation.
	Conflict
)

// String returns a human readable name, used in logs.
func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case Conflict:
		return "conflict"
	default:
		return "non-retryable"
	}
}
