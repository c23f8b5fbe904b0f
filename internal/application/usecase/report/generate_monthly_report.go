package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// GenerateMonthlyReportInput represents the input for monthly report
// generation. Zero Year/Month default to the current month.
type GenerateMonthlyReportInput struct {
	UserID uuid.UUID
	Year   int
	Month  time.Month
}

// GenerateMonthlyReportOutput represents the output of monthly report
// generation.
type GenerateMonthlyReportOutput struct {
	Report *entity.MonthlyReport
	Cached bool
}

// GenerateMonthlyReportUseCase builds the monthly financial summary,
// serving from cache when a fresh copy exists.
type GenerateMonthlyReportUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ReportCache
	now         func() time.Time
}

// NewGenerateMonthlyReportUseCase creates a new GenerateMonthlyReportUseCase instance.
func NewGenerateMonthlyReportUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ReportCache,
	now func() time.Time,
) *GenerateMonthlyReportUseCase {
	return &GenerateMonthlyReportUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute returns the monthly report, computing and caching it on miss.
func (uc *GenerateMonthlyReportUseCase) Execute(ctx context.Context, input GenerateMonthlyReportInput) (*GenerateMonthlyReportOutput, error) {
	year, month := input.Year, input.Month
	if year == 0 || month == 0 {
		n := uc.now().UTC()
		year, month = n.Year(), n.Month()
	}

	key := adapter.MonthlyReportKey(input.UserID.String(), year, month)
	var cached entity.MonthlyReport
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, fmt.Errorf("failed to read report cache: %w", err)
	}
	if hit {
		return &GenerateMonthlyReportOutput{Report: &cached, Cached: true}, nil
	}

	report, err := uc.buildReport(ctx, input.UserID, year, month)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, report, adapter.MonthlyReportTTL); err != nil {
		return nil, fmt.Errorf("failed to cache monthly report: %w", err)
	}

	return &GenerateMonthlyReportOutput{Report: report}, nil
}

func (uc *GenerateMonthlyReportUseCase) buildReport(ctx context.Context, userID uuid.UUID, year int, month time.Month) (*entity.MonthlyReport, error) {
	start, end := MonthBounds(year, month)

	expenses, err := uc.expenseRepo.FindByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load month expenses: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	prevYear, prevMonth := PreviousMonth(year, month)
	prevStart, prevEnd := MonthBounds(prevYear, prevMonth)
	prevByBudget, err := uc.expenseRepo.SumByBudget(ctx, userID, &prevStart, &prevEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load previous month expenses: %w", err)
	}

	totalExpenses := decimal.Zero
	spentByBudget := make(map[uuid.UUID]decimal.Decimal)
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Expense.Amount)
		spentByBudget[e.Expense.BudgetID] = spentByBudget[e.Expense.BudgetID].Add(e.Expense.Amount)
	}

	prevTotal := decimal.Zero
	for _, amount := range prevByBudget {
		prevTotal = prevTotal.Add(amount)
	}

	total := totalExpenses.InexactFloat64()
	netSavings := -total

	report := &entity.MonthlyReport{
		Period:            start.Format("January 2006"),
		TotalIncome:       0,
		TotalExpenses:     total,
		NetSavings:        netSavings,
		TopCategories:     topCategories(expenses, total, 5),
		BudgetPerformance: buildBudgetPerformance(budgets, spentByBudget),
		Trends:            buildTrends(total, netSavings, prevTotal.InexactFloat64()),
	}

	return report, nil
}

// topCategories groups spending by budget name, returning the largest
// categories first, at most limit entries. limit <= 0 keeps all.
func topCategories(expenses []*entity.ExpenseWithBudget, total float64, limit int) []entity.CategorySpending {
	amounts := make(map[string]float64)
	budgetIDs := make(map[string]string)
	var order []string
	for _, e := range expenses {
		name := e.Budget.Name
		if _, ok := amounts[name]; !ok {
			order = append(order, name)
			budgetIDs[name] = e.Budget.ID.String()
		}
		amounts[name] += e.Expense.Amount.InexactFloat64()
	}

	categories := make([]entity.CategorySpending, 0, len(order))
	for _, name := range order {
		percentage := 0.0
		if total > 0 {
			percentage = amounts[name] / total * 100
		}
		categories = append(categories, entity.CategorySpending{
			Category:   name,
			Amount:     amounts[name],
			Percentage: percentage,
			BudgetID:   budgetIDs[name],
		})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].Amount > categories[j].Amount
	})

	if limit > 0 && len(categories) > limit {
		categories = categories[:limit]
	}
	return categories
}

func buildBudgetPerformance(budgets []*entity.Budget, spentByBudget map[uuid.UUID]decimal.Decimal) []entity.BudgetPerformance {
	performance := make([]entity.BudgetPerformance, 0, len(budgets))
	for _, b := range budgets {
		spent := spentByBudget[b.ID].InexactFloat64()
		amount := b.Amount.InexactFloat64()

		percentage := 0.0
		if amount > 0 {
			percentage = spent / amount * 100
		}

		status := entity.BudgetStatusOnTrack
		switch {
		case percentage > 100:
			status = entity.BudgetStatusOver
		case percentage < 80:
			status = entity.BudgetStatusUnder
		}

		performance = append(performance, entity.BudgetPerformance{
			Name:         b.Name,
			BudgetAmount: amount,
			Spent:        spent,
			Percentage:   percentage,
			Status:       status,
		})
	}
	return performance
}

// buildTrends computes month-over-month change percentages. A zero
// previous value yields a 0 trend rather than a division by zero.
func buildTrends(total, netSavings, prevTotal float64) entity.ReportTrends {
	trends := entity.ReportTrends{}

	if prevTotal > 0 {
		trends.ExpensesTrend = (total - prevTotal) / prevTotal * 100
	}

	prevNetSavings := -prevTotal
	if prevNetSavings != 0 {
		trends.SavingsTrend = (netSavings - prevNetSavings) / abs(prevNetSavings) * 100
	}

	return trends
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
