// Package entity defines the core business entities for the domain layer.
package entity

// BudgetStatus classifies how a budget performed against its limit
// within a report period.
type BudgetStatus string

const (
	BudgetStatusUnder   BudgetStatus = "under"
	BudgetStatusOnTrack BudgetStatus = "on-track"
	BudgetStatusOver    BudgetStatus = "over"
)

// CategorySpending is one budget category's share of a period's spending.
type CategorySpending struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
	BudgetID   string  `json:"budgetId,omitempty"`
}

// BudgetPerformance describes how one budget performed within a month.
type BudgetPerformance struct {
	Name         string       `json:"name"`
	BudgetAmount float64      `json:"budgetAmount"`
	Spent        float64      `json:"spent"`
	Percentage   float64      `json:"percentage"`
	Status       BudgetStatus `json:"status"`
}

// ReportTrends holds month-over-month percentage changes.
type ReportTrends struct {
	ExpensesTrend float64 `json:"expensesTrend"`
	SavingsTrend  float64 `json:"savingsTrend"`
}

// MonthlyReport is the derived financial summary for one calendar month.
// Reports are pure derived state: recomputed on cache miss, cached with a
// fixed TTL, never hand-mutated.
type MonthlyReport struct {
	Period            string              `json:"period"`
	TotalIncome       float64             `json:"totalIncome"`
	TotalExpenses     float64             `json:"totalExpenses"`
	NetSavings        float64             `json:"netSavings"`
	TopCategories     []CategorySpending  `json:"topCategories"`
	BudgetPerformance []BudgetPerformance `json:"budgetPerformance"`
	Trends            ReportTrends        `json:"trends"`
}

// MonthBreakdown is one month's slice of a yearly report.
type MonthBreakdown struct {
	Month    string  `json:"month"`
	Expenses float64 `json:"expenses"`
	Income   float64 `json:"income"`
	Savings  float64 `json:"savings"`
}

// BudgetAnalysis summarizes yearly budget utilization.
type BudgetAnalysis struct {
	AverageUtilization float64 `json:"averageUtilization"`
	MostOverspent      string  `json:"mostOverspent"`
	MostUnderspent     string  `json:"mostUnderspent"`
}

// YearlyReport is the derived financial summary for one calendar year.
type YearlyReport struct {
	Year             int                `json:"year"`
	TotalIncome      float64            `json:"totalIncome"`
	TotalExpenses    float64            `json:"totalExpenses"`
	NetSavings       float64            `json:"netSavings"`
	MonthlyBreakdown []MonthBreakdown   `json:"monthlyBreakdown"`
	CategoryTotals   []CategorySpending `json:"categoryTotals"`
	BudgetAnalysis   BudgetAnalysis     `json:"budgetAnalysis"`
}
