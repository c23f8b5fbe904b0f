// Package budget contains budget-related use cases.
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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Name   string
	Amount decimal.Decimal
	Icon   string // Optional, defaults to DefaultBudgetIcon
	Color  string // Optional, defaults to DefaultBudgetColor
	UserID uuid.UUID
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.BudgetWithStats
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.ReportCache
	now        func() time.Time
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.ReportCache, now func() time.Time) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		now:        now,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
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

	// Budget names are unique per user
	exists, err := uc.budgetRepo.ExistsByNameAndUser(ctx, input.Name, input.UserID, nil)
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

	// Apply default values for optional fields (Application layer responsibility)
	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultBudgetIcon
	}
	color := input.Color
	if color == "" {
		color = entity.DefaultBudgetColor
	}

	budget := entity.NewBudget(input.Name, input.Amount, icon, color, input.UserID)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		// A concurrent create can slip past the existence pre-check and
		// hit the unique index instead.
		if errors.Is(err, domainerror.ErrBudgetNameExists) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNameExists,
				"a budget with this name already exists",
				domainerror.ErrBudgetNameExists,
			)
		}
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	if err := adapter.InvalidateUserCaches(ctx, uc.cache, input.UserID.String(), uc.now()); err != nil {
		return nil, fmt.Errorf("failed to invalidate report caches: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: entity.NewBudgetWithStats(budget, decimal.Zero),
	}, nil
}
