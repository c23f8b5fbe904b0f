package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
	domainerror "github.com/finansync/backend/internal/domain/error"
)

// GetBudgetInput represents the input for retrieving a single budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// GetBudgetOutput represents the output of retrieving a single budget.
type GetBudgetOutput struct {
	Budget *entity.BudgetWithStats
}

// GetBudgetUseCase handles retrieval of a single budget with spending stats.
type GetBudgetUseCase struct {
	budgetRepo  adapter.BudgetRepository
	expenseRepo adapter.ExpenseRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository, expenseRepo adapter.ExpenseRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo:  budgetRepo,
		expenseRepo: expenseRepo,
	}
}

// Execute retrieves the budget, scoped to its owner.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
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

	spentByBudget, err := uc.expenseRepo.SumByBudget(ctx, input.UserID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to sum expenses: %w", err)
	}

	spent, ok := spentByBudget[b.ID]
	if !ok {
		spent = decimal.Zero
	}

	return &GetBudgetOutput{Budget: entity.NewBudgetWithStats(b, spent)}, nil
}
