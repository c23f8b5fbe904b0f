// Package pdf renders financial reports as PDF documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// reportRenderer implements the adapter.ReportRenderer interface using gofpdf.
type reportRenderer struct{}

// NewReportRenderer creates a new PDF report renderer.
func NewReportRenderer() adapter.ReportRenderer {
	return &reportRenderer{}
}

// RenderMonthly renders a monthly report as a PDF document.
func (r *reportRenderer) RenderMonthly(report *entity.MonthlyReport) ([]byte, error) {
	pdf := newReportPDF(fmt.Sprintf("FinanSync Monthly Report - %s", report.Period))

	writeSummary(pdf, report.TotalIncome, report.TotalExpenses, report.NetSavings)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Top Categories")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(70, 7, "Category")
	pdf.Cell(50, 7, "Amount")
	pdf.Cell(30, 7, "Share")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, c := range report.TopCategories {
		pdf.Cell(70, 7, c.Category)
		pdf.Cell(50, 7, fmt.Sprintf("$%.2f", c.Amount))
		pdf.Cell(30, 7, fmt.Sprintf("%.1f%%", c.Percentage))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Budget Performance")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(55, 7, "Budget")
	pdf.Cell(35, 7, "Limit")
	pdf.Cell(35, 7, "Spent")
	pdf.Cell(25, 7, "Used")
	pdf.Cell(25, 7, "Status")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, p := range report.BudgetPerformance {
		pdf.Cell(55, 7, p.Name)
		pdf.Cell(35, 7, fmt.Sprintf("$%.2f", p.BudgetAmount))
		pdf.Cell(35, 7, fmt.Sprintf("$%.2f", p.Spent))
		pdf.Cell(25, 7, fmt.Sprintf("%.1f%%", p.Percentage))
		pdf.Cell(25, 7, string(p.Status))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Expenses trend vs previous month: %+.1f%%", report.Trends.ExpensesTrend))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Savings trend vs previous month: %+.1f%%", report.Trends.SavingsTrend))

	return output(pdf)
}

// RenderYearly renders a yearly report as a PDF document.
func (r *reportRenderer) RenderYearly(report *entity.YearlyReport) ([]byte, error) {
	pdf := newReportPDF(fmt.Sprintf("FinanSync Yearly Report - %d", report.Year))

	writeSummary(pdf, report.TotalIncome, report.TotalExpenses, report.NetSavings)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Monthly Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(40, 7, "Month")
	pdf.Cell(50, 7, "Expenses")
	pdf.Cell(50, 7, "Savings")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, m := range report.MonthlyBreakdown {
		pdf.Cell(40, 7, m.Month)
		pdf.Cell(50, 7, fmt.Sprintf("$%.2f", m.Expenses))
		pdf.Cell(50, 7, fmt.Sprintf("$%.2f", m.Savings))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Category Totals")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(70, 7, "Category")
	pdf.Cell(50, 7, "Amount")
	pdf.Cell(30, 7, "Share")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 11)
	for _, c := range report.CategoryTotals {
		pdf.Cell(70, 7, c.Category)
		pdf.Cell(50, 7, fmt.Sprintf("$%.2f", c.Amount))
		pdf.Cell(30, 7, fmt.Sprintf("%.1f%%", c.Percentage))
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Average budget utilization: %.1f%%", report.BudgetAnalysis.AverageUtilization))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Most overspent budget: %s", report.BudgetAnalysis.MostOverspent))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Most underspent budget: %s", report.BudgetAnalysis.MostUnderspent))

	return output(pdf)
}

func newReportPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	return pdf
}

func writeSummary(pdf *gofpdf.Fpdf, income, expenses, savings float64) {
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Income: $%.2f", income))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Total Expenses: $%.2f", expenses))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Net Savings: $%.2f", savings))
	pdf.Ln(10)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
