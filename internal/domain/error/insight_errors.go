// Package error defines domain-specific errors for the FinanSync application.
package error

import "errors"

// Insight domain errors.
var (
	// ErrMissingQuestion is returned when a chat request carries no question.
	ErrMissingQuestion = errors.New("question is required")
)
