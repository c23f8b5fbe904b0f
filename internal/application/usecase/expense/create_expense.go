// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
	domainerror "github.com/finansync/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Name        string
	Amount      decimal.Decimal
	Description string
	BudgetID    uuid.UUID
	UserID      uuid.UUID
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.ExpenseWithBudget
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
	cache       adapter.ReportCache
	now         func() time.Time
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.ReportCache,
	now func() time.Time,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute performs the expense creation. The target budget must belong
// to the same user.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if input.Name == "" || input.Amount.IsZero() || input.BudgetID == uuid.Nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"name, amount, and budgetId are required",
			domainerror.ErrMissingExpenseFields,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidExpenseAmount,
		)
	}

	b, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	exp := entity.NewExpense(input.Name, input.Amount, input.Description, b.ID, input.UserID)

	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	if err := adapter.InvalidateUserCaches(ctx, uc.cache, input.UserID.String(), uc.now()); err != nil {
		return nil, fmt.Errorf("failed to invalidate report caches: %w", err)
	}

	return &CreateExpenseOutput{
		Expense: &entity.ExpenseWithBudget{Expense: exp, Budget: b},
	}, nil
}
