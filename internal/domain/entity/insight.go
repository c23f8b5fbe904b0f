// Package entity defines the core business entities for the domain layer.
package entity

// InsightType classifies a spending insight.
type InsightType string

const (
	InsightTypeWarning     InsightType = "warning"
	InsightTypeSuggestion  InsightType = "suggestion"
	InsightTypeAchievement InsightType = "achievement"
	InsightTypeTrend       InsightType = "trend"
)

// SpendingInsight is one natural-language observation about the user's
// spending, produced by the AI model or by the deterministic fallback.
// Title, Description and Actionable are required; an insight missing any
// of them is discarded at the parsing boundary.
type SpendingInsight struct {
	Type        InsightType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Actionable  string      `json:"actionable"`
	Savings     *float64    `json:"savings,omitempty"`
	Category    string      `json:"category,omitempty"`
}

// BudgetSnapshot is the aggregated budget view handed to the AI model.
type BudgetSnapshot struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	Percentage float64 `json:"percentage"`
}

// ExpenseSnapshot is the aggregated expense view handed to the AI model.
type ExpenseSnapshot struct {
	Name     string  `json:"name"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Date     string  `json:"date"`
}

// MonthSpending is one month's total spend, used for trend context.
type MonthSpending struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// FinancialSnapshot is the aggregated financial data sent to the AI
// model, shaped by the caller rather than raw database rows.
type FinancialSnapshot struct {
	Budgets         []BudgetSnapshot  `json:"budgets"`
	Expenses        []ExpenseSnapshot `json:"expenses"`
	MonthlySpending []MonthSpending   `json:"monthlySpending"`
}
