// Package analytics contains spending analytics use cases.
package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// DefaultMonths is the analytics window applied when the request does
// not specify one.
const DefaultMonths = 12

// Chart fallbacks for expenses whose budget could not be resolved.
const (
	fallbackColor = "#8884d8"
	fallbackIcon  = "💰"
)

// MonthlySpendingPoint is one month of the spending trend chart.
type MonthlySpendingPoint struct {
	Month    string  `json:"month"`
	Amount   float64 `json:"amount"`
	Expenses int     `json:"expenses"`
}

// CategoryBreakdownItem is one budget category's share of window spending.
type CategoryBreakdownItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Count    int     `json:"count"`
	Color    string  `json:"color"`
	Icon     string  `json:"icon"`
}

// BudgetComparisonItem compares one budget's limit against all-time spend.
type BudgetComparisonItem struct {
	Category   string  `json:"category"`
	Budgeted   float64 `json:"budgeted"`
	Spent      float64 `json:"spent"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
	Status     string  `json:"status"`
	Color      string  `json:"color"`
	Icon       string  `json:"icon"`
}

// DailySpendingPoint is one day of the current month's spending chart.
type DailySpendingPoint struct {
	Day    string  `json:"day"`
	Amount float64 `json:"amount"`
}

// Metrics holds the aggregate financial indicators for the window.
type Metrics struct {
	TotalSpent              float64 `json:"totalSpent"`
	TotalBudget             float64 `json:"totalBudget"`
	TotalTransactions       int     `json:"totalTransactions"`
	AverageTransaction      float64 `json:"averageTransaction"`
	CurrentMonthSpending    float64 `json:"currentMonthSpending"`
	LastMonthSpending       float64 `json:"lastMonthSpending"`
	MonthlyChangePercentage float64 `json:"monthlyChangePercentage"`
	BudgetUtilization       float64 `json:"budgetUtilization"`
}

// Analytics is the full analytics payload.
type Analytics struct {
	MonthlySpending   []MonthlySpendingPoint  `json:"monthlySpending"`
	CategoryBreakdown []CategoryBreakdownItem `json:"categoryBreakdown"`
	BudgetComparison  []BudgetComparisonItem  `json:"budgetComparison"`
	DailySpending     []DailySpendingPoint    `json:"dailySpending"`
	Metrics           Metrics                 `json:"metrics"`
}

// GetAnalyticsInput represents the input for the analytics query.
// Months <= 0 defaults to DefaultMonths.
type GetAnalyticsInput struct {
	UserID uuid.UUID
	Months int
}

// GetAnalyticsOutput represents the output of the analytics query.
type GetAnalyticsOutput struct {
	Analytics *Analytics
}

// GetAnalyticsUseCase assembles spending analytics over a trailing
// window of months. Analytics are always computed fresh, never cached.
type GetAnalyticsUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(budgetRepo adapter.BudgetRepository, expenseRepo adapter.ExpenseRepository, now func() time.Time) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		now:         now,
	}
}

// Execute computes the analytics payload.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	months := input.Months
	if months <= 0 {
		months = DefaultMonths
	}

	n := uc.now().UTC()
	windowStart := n.AddDate(0, -months, 0)

	windowExpenses, err := uc.expenseRepo.FindByUserInRange(ctx, input.UserID, windowStart, n)
	if err != nil {
		return nil, fmt.Errorf("failed to load window expenses: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	allTimeSpent, err := uc.expenseRepo.SumByBudget(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	monthStart := time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthStart := monthStart.AddDate(0, -1, 0)
	lastMonthEnd := monthStart.Add(-time.Nanosecond)

	currentMonth, err := uc.sumRange(ctx, input.UserID, monthStart, n)
	if err != nil {
		return nil, err
	}
	lastMonth, err := uc.sumRange(ctx, input.UserID, lastMonthStart, lastMonthEnd)
	if err != nil {
		return nil, err
	}

	monthExpenses, err := uc.expenseRepo.FindByUserInRange(ctx, input.UserID, monthStart, monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond))
	if err != nil {
		return nil, fmt.Errorf("failed to load month expenses: %w", err)
	}

	return &GetAnalyticsOutput{Analytics: &Analytics{
		MonthlySpending:   monthlySpending(windowExpenses),
		CategoryBreakdown: categoryBreakdown(windowExpenses),
		BudgetComparison:  budgetComparison(budgets, allTimeSpent),
		DailySpending:     dailySpending(monthExpenses),
		Metrics:           buildMetrics(windowExpenses, budgets, currentMonth, lastMonth),
	}}, nil
}

func (uc *GetAnalyticsUseCase) sumRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (float64, error) {
	byBudget, err := uc.expenseRepo.SumByBudget(ctx, userID, &from, &to)
	if err != nil {
		return 0, fmt.Errorf("failed to sum expenses in range: %w", err)
	}
	total := decimal.Zero
	for _, amount := range byBudget {
		total = total.Add(amount)
	}
	return total.InexactFloat64(), nil
}

// monthlySpending buckets window expenses per month, in first-seen order
// (expenses arrive oldest first).
func monthlySpending(expenses []*entity.ExpenseWithBudget) []MonthlySpendingPoint {
	amounts := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, e := range expenses {
		month := e.Expense.CreatedAt.UTC().Format("Jan 2006")
		if _, ok := amounts[month]; !ok {
			order = append(order, month)
		}
		amounts[month] += e.Expense.Amount.InexactFloat64()
		counts[month]++
	}

	points := make([]MonthlySpendingPoint, 0, len(order))
	for _, month := range order {
		points = append(points, MonthlySpendingPoint{
			Month:    month,
			Amount:   round2(amounts[month]),
			Expenses: counts[month],
		})
	}
	return points
}

func categoryBreakdown(expenses []*entity.ExpenseWithBudget) []CategoryBreakdownItem {
	type bucket struct {
		amount float64
		count  int
		color  string
		icon   string
	}
	buckets := make(map[string]*bucket)
	var order []string
	for _, e := range expenses {
		name := e.Budget.Name
		color, icon := e.Budget.Color, e.Budget.Icon
		if name == "" {
			name = "Unknown"
		}
		if color == "" {
			color = fallbackColor
		}
		if icon == "" {
			icon = fallbackIcon
		}
		b, ok := buckets[name]
		if !ok {
			b = &bucket{color: color, icon: icon}
			buckets[name] = b
			order = append(order, name)
		}
		b.amount += e.Expense.Amount.InexactFloat64()
		b.count++
	}

	items := make([]CategoryBreakdownItem, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		if b.amount <= 0 {
			continue
		}
		items = append(items, CategoryBreakdownItem{
			Category: name,
			Amount:   round2(b.amount),
			Count:    b.count,
			Color:    b.color,
			Icon:     b.icon,
		})
	}
	return items
}

func budgetComparison(budgets []*entity.Budget, allTimeSpent map[uuid.UUID]decimal.Decimal) []BudgetComparisonItem {
	items := make([]BudgetComparisonItem, 0, len(budgets))
	for _, b := range budgets {
		budgeted := b.Amount.InexactFloat64()
		spent := allTimeSpent[b.ID].InexactFloat64()

		percentage := 0.0
		if budgeted > 0 {
			percentage = spent / budgeted * 100
		}

		status := "good"
		switch {
		case spent > budgeted:
			status = "over"
		case spent > budgeted*0.8:
			status = "warning"
		}

		color, icon := b.Color, b.Icon
		if color == "" {
			color = fallbackColor
		}
		if icon == "" {
			icon = fallbackIcon
		}

		items = append(items, BudgetComparisonItem{
			Category:   b.Name,
			Budgeted:   round2(budgeted),
			Spent:      round2(spent),
			Remaining:  round2(budgeted - spent),
			Percentage: round1(percentage),
			Status:     status,
			Color:      color,
			Icon:       icon,
		})
	}
	return items
}

func dailySpending(expenses []*entity.ExpenseWithBudget) []DailySpendingPoint {
	amounts := make(map[string]float64)
	var order []string
	for _, e := range expenses {
		day := e.Expense.CreatedAt.UTC().Format("Jan 02")
		if _, ok := amounts[day]; !ok {
			order = append(order, day)
		}
		amounts[day] += e.Expense.Amount.InexactFloat64()
	}

	points := make([]DailySpendingPoint, 0, len(order))
	for _, day := range order {
		points = append(points, DailySpendingPoint{Day: day, Amount: round2(amounts[day])})
	}
	return points
}

func buildMetrics(windowExpenses []*entity.ExpenseWithBudget, budgets []*entity.Budget, currentMonth, lastMonth float64) Metrics {
	var totalSpent, totalBudget float64
	for _, e := range windowExpenses {
		totalSpent += e.Expense.Amount.InexactFloat64()
	}
	for _, b := range budgets {
		totalBudget += b.Amount.InexactFloat64()
	}

	averageTransaction := 0.0
	if len(windowExpenses) > 0 {
		averageTransaction = totalSpent / float64(len(windowExpenses))
	}

	monthlyChange := 0.0
	if lastMonth > 0 {
		monthlyChange = (currentMonth - lastMonth) / lastMonth * 100
	}

	budgetUtilization := 0.0
	if totalBudget > 0 {
		budgetUtilization = totalSpent / totalBudget * 100
	}

	return Metrics{
		TotalSpent:              round2(totalSpent),
		TotalBudget:             round2(totalBudget),
		TotalTransactions:       len(windowExpenses),
		AverageTransaction:      round2(averageTransaction),
		CurrentMonthSpending:    round2(currentMonth),
		LastMonthSpending:       round2(lastMonth),
		MonthlyChangePercentage: round1(monthlyChange),
		BudgetUtilization:       round1(budgetUtilization),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
