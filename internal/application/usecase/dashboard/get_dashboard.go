// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/application/adapter"
)

// recentExpenseCount is the size of the dashboard activity feed.
const recentExpenseCount = 10

// BudgetProgress is one budget's all-time progress bar on the dashboard.
type BudgetProgress struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Spent      float64 `json:"spent"`
	Percentage int     `json:"percentage"`
	Icon       string  `json:"icon"`
	Color      string  `json:"color"`
	Remaining  float64 `json:"remaining"`
}

// RecentExpenseBudget is the budget summary attached to an activity feed entry.
type RecentExpenseBudget struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// RecentExpense is one entry of the dashboard activity feed.
type RecentExpense struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Amount      float64             `json:"amount"`
	Description string              `json:"description,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	Budget      RecentExpenseBudget `json:"budget"`
}

// Summary holds the dashboard count metrics. ExpenseCount and
// AverageExpense cover the current month only.
type Summary struct {
	BudgetCount    int     `json:"budgetCount"`
	ExpenseCount   int     `json:"expenseCount"`
	AverageExpense float64 `json:"averageExpense"`
}

// Dashboard is the aggregated home screen payload. TotalSpent covers the
// current month; budget progress covers all time.
type Dashboard struct {
	TotalBudget     float64          `json:"totalBudget"`
	TotalSpent      float64          `json:"totalSpent"`
	TotalRemaining  float64          `json:"totalRemaining"`
	SpentPercentage int              `json:"spentPercentage"`
	BudgetProgress  []BudgetProgress `json:"budgetProgress"`
	RecentExpenses  []RecentExpense  `json:"recentExpenses"`
	Summary         Summary          `json:"summary"`
}

// GetDashboardInput represents the input for the dashboard query.
type GetDashboardInput struct {
	UserID uuid.UUID
}

// GetDashboardOutput represents the output of the dashboard query.
type GetDashboardOutput struct {
	Dashboard *Dashboard
	Cached    bool
}

// GetDashboardUseCase assembles the dashboard payload, serving from
// cache when a fresh copy exists.
type GetDashboardUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ReportCache
	now         func() time.Time
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ReportCache,
	now func() time.Time,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute returns the dashboard, computing and caching it on miss.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	key := adapter.DashboardKey(input.UserID.String())
	var cached Dashboard
	hit, err := uc.cache.Get(ctx, key, &cached)
	if err != nil {
		return nil, fmt.Errorf("failed to read dashboard cache: %w", err)
	}
	if hit {
		return &GetDashboardOutput{Dashboard: &cached, Cached: true}, nil
	}

	d, err := uc.build(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if err := uc.cache.Set(ctx, key, d, adapter.DashboardTTL); err != nil {
		return nil, fmt.Errorf("failed to cache dashboard: %w", err)
	}

	return &GetDashboardOutput{Dashboard: d}, nil
}

func (uc *GetDashboardUseCase) build(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	allTimeSpent, err := uc.expenseRepo.SumByBudget(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	n := uc.now().UTC()
	monthStart := time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthExpenses, err := uc.expenseRepo.FindByUserInRange(ctx, userID, monthStart, n)
	if err != nil {
		return nil, fmt.Errorf("failed to load month expenses: %w", err)
	}

	recent, err := uc.expenseRepo.FindByUser(ctx, userID, recentExpenseCount)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent expenses: %w", err)
	}

	var totalBudget, totalSpent float64
	for _, b := range budgets {
		totalBudget += b.Amount.InexactFloat64()
	}
	for _, e := range monthExpenses {
		totalSpent += e.Expense.Amount.InexactFloat64()
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		amount := b.Amount.InexactFloat64()
		spent := allTimeSpent[b.ID].InexactFloat64()

		percentage := 0
		if amount > 0 {
			percentage = int(math.Round(spent / amount * 100))
		}

		progress = append(progress, BudgetProgress{
			ID:         b.ID.String(),
			Name:       b.Name,
			Amount:     amount,
			Spent:      spent,
			Percentage: percentage,
			Icon:       b.Icon,
			Color:      b.Color,
			Remaining:  amount - spent,
		})
	}

	feed := make([]RecentExpense, 0, len(recent))
	for _, e := range recent {
		feed = append(feed, RecentExpense{
			ID:          e.Expense.ID.String(),
			Name:        e.Expense.Name,
			Amount:      e.Expense.Amount.InexactFloat64(),
			Description: e.Expense.Description,
			CreatedAt:   e.Expense.CreatedAt,
			Budget: RecentExpenseBudget{
				Name:  e.Budget.Name,
				Icon:  e.Budget.Icon,
				Color: e.Budget.Color,
			},
		})
	}

	spentPercentage := 0
	if totalBudget > 0 {
		spentPercentage = int(math.Round(totalSpent / totalBudget * 100))
	}

	averageExpense := 0.0
	if len(monthExpenses) > 0 {
		averageExpense = totalSpent / float64(len(monthExpenses))
	}

	return &Dashboard{
		TotalBudget:     totalBudget,
		TotalSpent:      totalSpent,
		TotalRemaining:  totalBudget - totalSpent,
		SpentPercentage: spentPercentage,
		BudgetProgress:  progress,
		RecentExpenses:  feed,
		Summary: Summary{
			BudgetCount:    len(budgets),
			ExpenseCount:   len(monthExpenses),
			AverageExpense: averageExpense,
		},
	}, nil
}
