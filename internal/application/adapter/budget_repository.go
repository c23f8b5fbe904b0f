package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByIDAndUser retrieves a budget by ID, scoped to its owner.
	// Returns domain ErrBudgetNotFound when missing or owned by another user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// ExistsByNameAndUser checks whether the user already has a budget with
	// the given name. excludeID, when non-nil, is left out of the check
	// (used by updates renaming a budget).
	ExistsByNameAndUser(ctx context.Context, name string, userID uuid.UUID, excludeID *uuid.UUID) (bool, error)

	// Update updates an existing budget in the database.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByIDAndUser retrieves an expense with its owning budget, scoped
	// to the owner. Returns domain ErrExpenseNotFound when missing.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ExpenseWithBudget, error)

	// FindByUser retrieves expenses for a user, newest first, with owning
	// budgets attached. limit <= 0 means no limit.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ExpenseWithBudget, error)

	// FindByUserInRange retrieves the user's expenses with createdAt in
	// [from, to], oldest first, with owning budgets attached.
	FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ExpenseWithBudget, error)

	// SumByBudget returns total spend grouped by budget ID for the user.
	// from/to, when non-nil, restrict the window on createdAt.
	SumByBudget(ctx context.Context, userID uuid.UUID, from, to *time.Time) (map[uuid.UUID]decimal.Decimal, error)

	// CountByBudget returns the number of expenses attached to a budget.
	CountByBudget(ctx context.Context, budgetID uuid.UUID) (int64, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
