package budget

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

// UpdateBudgetInput represents the input for budget updates. Icon and
// Color keep their current values when empty.
type UpdateBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
	Name     string
	Amount   decimal.Decimal
	Icon     string
	Color    string
}

// UpdateBudgetOutput represents the output of a budget update.
type UpdateBudgetOutput struct {
	Budget *entity.BudgetWithStats
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
	cache       adapter.ReportCache
	now         func() time.Time
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	cache adapter.ReportCache,
	now func() time.Time,
) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
		cache:       cache,
		now:         now,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if input.Name == "" || input.Amount.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"name and amount are required",
			domainerror.ErrMissingBudgetFields,
		)
	}
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"amount must be greater than 0",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	b, err := uc.budgetRepo.FindByIDAndUser(ctx, input.BudgetID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	// Renaming must not collide with another budget of the same user
	exists, err := uc.budgetRepo.ExistsByNameAndUser(ctx, input.Name, input.UserID, &b.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check budget name existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNameExists,
			"a budget with this name already exists",
			domainerror.ErrBudgetNameExists,
		)
	}

	b.Name = input.Name
	b.Amount = input.Amount
	if input.Icon != "" {
		b.Icon = input.Icon
	}
	if input.Color != "" {
		b.Color = input.Color
	}
	b.UpdatedAt = uc.now().UTC()

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		// A concurrent rename can slip past the existence pre-check and
		// hit the unique index instead.
		if errors.Is(err, domainerror.ErrBudgetNameExists) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNameExists,
				"a budget with this name already exists",
				domainerror.ErrBudgetNameExists,
			)
		}
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	if err := adapter.InvalidateUserCaches(ctx, uc.cache, input.UserID.String(), uc.now()); err != nil {
		return nil, fmt.Errorf("failed to invalidate report caches: %w", err)
	}

	spentByBudget, err := uc.expenseRepo.SumByBudget(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	spent, ok := spentByBudget[b.ID]
	if !ok {
		spent = decimal.Zero
	}

	return &UpdateBudgetOutput{Budget: entity.NewBudgetWithStats(b, spent)}, nil
}
