package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finansync/backend/internal/application/usecase/report"
	domainerror "github.com/finansync/backend/internal/domain/error"
	"github.com/finansync/backend/internal/integration/entrypoint/dto"
	"github.com/finansync/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles HTTP requests for financial reports.
type ReportController struct {
	monthlyUseCase *report.GenerateMonthlyReportUseCase
	yearlyUseCase  *report.GenerateYearlyReportUseCase
	exportUseCase  *report.ExportReportPDFUseCase
}

// NewReportController creates a new ReportController instance.
func NewReportController(
	monthlyUseCase *report.GenerateMonthlyReportUseCase,
	yearlyUseCase *report.GenerateYearlyReportUseCase,
	exportUseCase *report.ExportReportPDFUseCase,
) *ReportController {
	return &ReportController{
		monthlyUseCase: monthlyUseCase,
		yearlyUseCase:  yearlyUseCase,
		exportUseCase:  exportUseCase,
	}
}

// GetMonthly handles GET /api/v1/reports/monthly requests. The optional
// month query parameter uses the YYYY-MM format and defaults to the
// current month.
func (c *ReportController) GetMonthly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.GenerateMonthlyReportInput{UserID: userID}
	if raw := ctx.Query("month"); raw != "" {
		period, err := time.Parse("2006-01", raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidReportPeriod.Error(),
				Code:  string(domainerror.ErrCodeInvalidReportPeriod),
			})
			return
		}
		input.Year = period.Year()
		input.Month = period.Month()
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		slog.Error("Failed to generate monthly report", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate report",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Report)
}

// GetYearly handles GET /api/v1/reports/yearly requests. The optional
// year query parameter defaults to the current year.
func (c *ReportController) GetYearly(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := report.GenerateYearlyReportInput{UserID: userID}
	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidReportPeriod.Error(),
				Code:  string(domainerror.ErrCodeInvalidReportPeriod),
			})
			return
		}
		input.Year = year
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		slog.Error("Failed to generate yearly report", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate report",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Report)
}

// ExportPDF handles POST /api/v1/reports/export-pdf requests and streams
// the rendered report back as a download.
func (c *ReportController) ExportPDF(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ExportReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidReportType),
		})
		return
	}

	input := report.ExportReportPDFInput{
		UserID:     userID,
		ReportType: req.ReportType,
		Year:       req.Year,
	}
	if req.Month != "" {
		period, err := time.Parse("2006-01", req.Month)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidReportPeriod.Error(),
				Code:  string(domainerror.ErrCodeInvalidReportPeriod),
			})
			return
		}
		input.Year = period.Year()
		input.Month = period.Month()
	}

	output, err := c.exportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidReportType) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: domainerror.ErrInvalidReportType.Error(),
				Code:  string(domainerror.ErrCodeInvalidReportType),
			})
			return
		}

		slog.Error("Failed to export report PDF", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to export report",
		})
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, "application/pdf", output.Data)
}
