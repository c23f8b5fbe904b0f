package adapter

import "github.com/finansync/backend/internal/domain/entity"

// ReportRenderer defines the interface for rendering reports as documents.
type ReportRenderer interface {
	// RenderMonthly renders a monthly report as a PDF document.
	RenderMonthly(report *entity.MonthlyReport) ([]byte, error)

	// RenderYearly renders a yearly report as a PDF document.
	RenderYearly(report *entity.YearlyReport) ([]byte, error)
}
