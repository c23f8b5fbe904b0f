package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.BudgetWithStats
}

// ListBudgetsUseCase handles listing a user's budgets with spending stats.
type ListBudgetsUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, expenseRepo adapter.ExpenseRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute lists all budgets for the user, each with all-time spending stats.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	spentByBudget, err := uc.expenseRepo.SumByBudget(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	withStats := make([]*entity.BudgetWithStats, 0, len(budgets))
	for _, b := range budgets {
		spent, ok := spentByBudget[b.ID]
		if !ok {
			spent = decimal.Zero
		}
		withStats = append(withStats, entity.NewBudgetWithStats(b, spent))
	}

	return &ListBudgetsOutput{Budgets: withStats}, nil
}
