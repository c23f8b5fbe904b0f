// Package error defines domain-specific errors for the FinanSync application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found or does not
	// belong to the requesting user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetNameExists is returned when the user already has a budget
	// with the same name.
	ErrBudgetNameExists = errors.New("budget with this name already exists")

	// ErrBudgetHasExpenses is returned when attempting to delete a budget
	// that still has expenses attached.
	ErrBudgetHasExpenses = errors.New("cannot delete budget with existing expenses")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("amount must be greater than 0")

	// ErrMissingBudgetFields is returned when required budget fields are missing.
	ErrMissingBudgetFields = errors.New("name and amount are required")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BUD-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBudgetFields BudgetErrorCode = "BUD-010001"
	ErrCodeInvalidBudgetAmount BudgetErrorCode = "BUD-010002"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BUD-020001"

	// Conflict errors (03XXXX)
	ErrCodeBudgetNameExists  BudgetErrorCode = "BUD-030001"
	ErrCodeBudgetHasExpenses BudgetErrorCode = "BUD-030002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
