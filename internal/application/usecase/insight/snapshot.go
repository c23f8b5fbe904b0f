// Package insight contains AI spending insight use cases.
package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// Expense history sizes handed to the model. Insights read a shorter
// window than free-form chat.
const (
	insightExpenseLimit = 50
	chatExpenseLimit    = 100
)

// buildSnapshot aggregates the user's budgets and recent expenses into
// the shape the AI model consumes. withMonthly adds per-month totals
// derived from the fetched expenses.
func buildSnapshot(
	ctx context.Context,
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	userID uuid.UUID,
	expenseLimit int,
	withMonthly bool,
) (*entity.FinancialSnapshot, error) {
	budgets, err := budgetRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets: %w", err)
	}

	spentByBudget, err := expenseRepo.SumByBudget(ctx, userID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	expenses, err := expenseRepo.FindByUser(ctx, userID, expenseLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent expenses: %w", err)
	}

	snapshot := &entity.FinancialSnapshot{
		Budgets:         make([]entity.BudgetSnapshot, 0, len(budgets)),
		Expenses:        make([]entity.ExpenseSnapshot, 0, len(expenses)),
		MonthlySpending: []entity.MonthSpending{},
	}

	for _, b := range budgets {
		amount := b.Amount.InexactFloat64()
		spent := spentByBudget[b.ID].InexactFloat64()

		percentage := 0.0
		if amount > 0 {
			percentage = spent / amount * 100
		}

		snapshot.Budgets = append(snapshot.Budgets, entity.BudgetSnapshot{
			Name:       b.Name,
			Amount:     amount,
			Spent:      spent,
			Percentage: percentage,
		})
	}

	for _, e := range expenses {
		snapshot.Expenses = append(snapshot.Expenses, entity.ExpenseSnapshot{
			Name:     e.Expense.Name,
			Amount:   e.Expense.Amount.InexactFloat64(),
			Category: e.Budget.Name,
			Date:     e.Expense.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	if withMonthly {
		snapshot.MonthlySpending = monthlyTotals(expenses)
	}

	return snapshot, nil
}

// monthlyTotals buckets expenses by calendar month (YYYY-MM), in
// first-seen order.
func monthlyTotals(expenses []*entity.ExpenseWithBudget) []entity.MonthSpending {
	amounts := make(map[string]decimal.Decimal)
	var order []string
	for _, e := range expenses {
		month := e.Expense.CreatedAt.UTC().Format("2006-01")
		if _, ok := amounts[month]; !ok {
			order = append(order, month)
		}
		amounts[month] = amounts[month].Add(e.Expense.Amount)
	}

	totals := make([]entity.MonthSpending, 0, len(order))
	for _, month := range order {
		totals = append(totals, entity.MonthSpending{
			Month:  month,
			Amount: amounts[month].InexactFloat64(),
		})
	}
	return totals
}
