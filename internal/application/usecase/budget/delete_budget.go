package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/application/adapter"
	domainerror "github.com/finansync/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ReportCache
	now         func() time.Time
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ReportCache,
	now func() time.Time,
) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute deletes the budget. Budgets with expenses attached are
// protected; the expenses must be deleted or moved first.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	b, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return fmt.Errorf("failed to find budget: %w", err)
	}

	count, err := uc.expenseRepo.CountByBudget(ctx, b.ID)
	if err != nil {
		return fmt.Errorf("failed to count budget expenses: %w", err)
	}
	if count > 0 {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetHasExpenses,
			"cannot delete budget with existing expenses",
			domainerror.ErrBudgetHasExpenses,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, b.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	if err := adapter.InvalidateUserCaches(ctx, uc.cache, input.UserID.String(), uc.now()); err != nil {
		return fmt.Errorf("failed to invalidate report caches: %w", err)
	}

	return nil
}
