// Package error defines domain-specific errors for the FinanSync application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidReportPeriod is returned when a report period parameter
	// cannot be parsed.
	ErrInvalidReportPeriod = errors.New("invalid report period")

	// ErrInvalidReportType is returned when an export request names an
	// unknown report type.
	ErrInvalidReportType = errors.New("report type must be 'monthly' or 'yearly'")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportPeriod ReportErrorCode = "RPT-010001"
	ErrCodeInvalidReportType   ReportErrorCode = "RPT-010002"
)
