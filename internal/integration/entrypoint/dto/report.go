package dto

import "github.com/finansync/backend/internal/domain/entity"

// ExportReportRequest represents the request body for PDF export.
// Month uses the YYYY-MM format and applies to monthly reports only.
type ExportReportRequest struct {
	ReportType string `json:"reportType" binding:"required"`
	Month      string `json:"month,omitempty"`
	Year       int    `json:"year,omitempty"`
}

// InsightListResponse represents the response for AI insight generation.
type InsightListResponse struct {
	Insights []entity.SpendingInsight `json:"insights"`
}

// ChatRequest represents the request body for a financial chat question.
type ChatRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatResponse represents the response for a financial chat question.
type ChatResponse struct {
	Answer string `json:"answer"`
}
