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

// UpdateExpenseInput represents the input for expense updates.
type UpdateExpenseInput struct {
	ExpenseID   uuid.UUID
	UserID      uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Description string
	BudgetID    uuid.UUID
}

// UpdateExpenseOutput represents the output of an expense update.
type UpdateExpenseOutput struct {
	Expense *entity.ExpenseWithBudget
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
	cache       adapter.ReportCache
	now         func() time.Time
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.ReportCache,
	now func() time.Time,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute performs the expense update. Moving the expense to another
// budget requires that budget to belong to the same user.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
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

	existing, err := uc.expenseRepo.FindByIDAndUser(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
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

	exp := existing.Expense
	exp.Name = input.Name
	exp.Amount = input.Amount
	exp.Description = input.Description
	exp.BudgetID = b.ID
	exp.UpdatedAt = uc.now().UTC()

	if err := uc.expenseRepo.Update(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	if err := adapter.InvalidateUserCaches(ctx, uc.cache, input.UserID.String(), uc.now()); err != nil {
		return nil, fmt.Errorf("failed to invalidate report caches: %w", err)
	}

	return &UpdateExpenseOutput{
		Expense: &entity.ExpenseWithBudget{Expense: exp, Budget: b},
	}, nil
}
