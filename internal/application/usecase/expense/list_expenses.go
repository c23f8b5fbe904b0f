package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// ListExpensesInput represents the input for listing expenses.
// Limit <= 0 returns the full history.
type ListExpensesInput struct {
	UserID uuid.UUID
	Limit  int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseWithBudget
}

// ListExpensesUseCase handles listing a user's expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists the user's expenses, newest first, with owning budgets.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID, input.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
