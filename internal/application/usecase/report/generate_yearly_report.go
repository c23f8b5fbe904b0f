package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// GenerateYearlyReportInput represents the input for yearly report
// generation. A zero Year defaults to the current year.
type GenerateYearlyReportInput struct {
	UserID uuid.UUID
	Year   int
}

// GenerateYearlyReportOutput represents the output of yearly report
// generation.
type GenerateYearlyReportOutput struct {
	Report *entity.YearlyReport
	Cached bool
}

// GenerateYearlyReportUseCase builds the yearly financial summary,
// serving from cache when a fresh copy exists.
type GenerateYearlyReportUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ReportCache
	now         func() time.Time
}

// NewGenerateYearlyReportUseCase creates a new GenerateYearlyReportUseCase instance.
func NewGenerateYearlyReportUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ReportCache,
	now func() time.Time,
) *GenerateYearlyReportUseCase {
	return &GenerateYearlyReportUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute returns the yearly report, computing and caching it on miss.
func (uc *GenerateYearlyReportUseCase) Execute(ctx context.Context, input GenerateYearlyReportInput) (*GenerateYearlyReportOutput, error) {
	year := input.Year
	if year == 0 {
		year = uc.now().UTC().Year()
	}

	key := adapter.YearlyReportKey(input.UserID.String(), year)
	var cached entity.YearlyReport
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, fmt.Errorf("failed to read report cache: %w", err)
	}
	if hit {
		return &GenerateYearlyReportOutput{Report: &cached, Cached: true}, nil
	}

	report, err := uc.buildReport(ctx, input.UserID, year)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, report, adapter.YearlyReportTTL); err != nil {
		return nil, fmt.Errorf("failed to cache yearly report: %w", err)
	}

	return &GenerateYearlyReportOutput{Report: report}, nil
}

func (uc *GenerateYearlyReportUseCase) buildReport(ctx context.Context, userID uuid.UUID, year int) (*entity.YearlyReport, error) {
	start, end := YearBounds(year)

	expenses, err := uc.expenseRepo.FindByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load year expenses: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	totalExpenses := decimal.Zero
	spentByBudget := make(map[uuid.UUID]decimal.Decimal)
	monthTotals := make([]float64, 12)
	for _, e := range expenses {
		totalExpenses = totalExpenses.Add(e.Expense.Amount)
		spentByBudget[e.Expense.BudgetID] = spentByBudget[e.Expense.BudgetID].Add(e.Expense.Amount)
		monthTotals[int(e.Expense.CreatedAt.UTC().Month())-1] += e.Expense.Amount.InexactFloat64()
	}

	breakdown := make([]entity.MonthBreakdown, 12)
	for i := range breakdown {
		monthStart := time.Date(year, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		breakdown[i] = entity.MonthBreakdown{
			Month:    monthStart.Format("Jan"),
			Expenses: monthTotals[i],
			Income:   0,
			Savings:  -monthTotals[i],
		}
	}

	total := totalExpenses.InexactFloat64()

	return &entity.YearlyReport{
		Year:             year,
		TotalIncome:      0,
		TotalExpenses:    total,
		NetSavings:       -total,
		MonthlyBreakdown: breakdown,
		CategoryTotals:   topCategories(expenses, total, 0),
		BudgetAnalysis:   buildBudgetAnalysis(budgets, spentByBudget),
	}, nil
}

// buildBudgetAnalysis measures yearly spend against the annualized budget
// limit (monthly amount times twelve).
func buildBudgetAnalysis(budgets []*entity.Budget, spentByBudget map[uuid.UUID]decimal.Decimal) entity.BudgetAnalysis {
	analysis := entity.BudgetAnalysis{
		MostOverspent:  "None",
		MostUnderspent: "None",
	}
	if len(budgets) == 0 {
		return analysis
	}

	var sum float64
	var maxName, minName string
	var maxUtil, minUtil float64
	for i, b := range budgets {
		annual := b.Amount.InexactFloat64() * 12

		utilization := 0.0
		if annual > 0 {
			utilization = spentByBudget[b.ID].InexactFloat64() / annual * 100
		}
		sum += utilization

		if i == 0 || utilization > maxUtil {
			maxUtil, maxName = utilization, b.Name
		}
		if i == 0 || utilization < minUtil {
			minUtil, minName = utilization, b.Name
		}
	}

	analysis.AverageUtilization = sum / float64(len(budgets))
	if maxUtil > 100 {
		analysis.MostOverspent = maxName
	}
	if minUtil < 50 {
		analysis.MostUnderspent = minName
	}
	return analysis
}
