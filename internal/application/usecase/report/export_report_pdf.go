package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/application/adapter"
	domainerror "github.com/finansync/backend/internal/domain/error"
)

// Report types accepted by the PDF export.
const (
	TypeMonthly = "monthly"
	TypeYearly  = "yearly"
)

// ExportReportPDFInput represents the input for PDF export. Zero
// Year/Month default to the current period.
type ExportReportPDFInput struct {
	UserID     uuid.UUID
	ReportType string
	Year       int
	Month      time.Month
}

// ExportReportPDFOutput represents the output of PDF export.
type ExportReportPDFOutput struct {
	Data     []byte
	Filename string
}

// ExportReportPDFUseCase renders a monthly or yearly report as a PDF
// document for download.
type ExportReportPDFUseCase struct {
	monthly  *GenerateMonthlyReportUseCase
	yearly   *GenerateYearlyReportUseCase
	renderer adapter.ReportRenderer
	now      func() time.Time
}

// NewExportReportPDFUseCase creates a new ExportReportPDFUseCase instance.
func NewExportReportPDFUseCase(
	monthly *GenerateMonthlyReportUseCase,
	yearly *GenerateYearlyReportUseCase,
	renderer adapter.ReportRenderer,
	now func() time.Time,
) *ExportReportPDFUseCase {
	return &ExportReportPDFUseCase{
		monthly:  monthly,
		yearly:   yearly,
		renderer: renderer,
		now:      now,
	}
}

// Execute generates the requested report and renders it as a PDF.
func (uc *ExportReportPDFUseCase) Execute(ctx context.Context, input ExportReportPDFInput) (*ExportReportPDFOutput, error) {
	var (
		data []byte
		err  error
	)

	switch input.ReportType {
	case TypeMonthly:
		var out *GenerateMonthlyReportOutput
		out, err = uc.monthly.Execute(ctx, GenerateMonthlyReportInput{
			UserID: input.UserID,
			Year:   input.Year,
			Month:  input.Month,
		})
		if err == nil {
			data, err = uc.renderer.RenderMonthly(out.Report)
		}
	case TypeYearly:
		var out *GenerateYearlyReportOutput
		out, err = uc.yearly.Execute(ctx, GenerateYearlyReportInput{
			UserID: input.UserID,
			Year:   input.Year,
		})
		if err == nil {
			data, err = uc.renderer.RenderYearly(out.Report)
		}
	default:
		return nil, domainerror.ErrInvalidReportType
	}

	if err != nil {
		return nil, fmt.Errorf("failed to export %s report: %w", input.ReportType, err)
	}

	return &ExportReportPDFOutput{
		Data:     data,
		Filename: fmt.Sprintf("finansync-report-%s-%d.pdf", input.ReportType, uc.now().UnixMilli()),
	}, nil
}
