// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single spend event attributed to one budget and
// one user. The referenced budget must belong to the same user.
type Expense struct {
	ID          uuid.UUID
	Name        string
	Amount      decimal.Decimal
	Description string
	BudgetID    uuid.UUID
	UserID      uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(name string, amount decimal.Decimal, description string, budgetID, userID uuid.UUID) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		Name:        name,
		Amount:      amount,
		Description: description,
		BudgetID:    budgetID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseWithBudget pairs an expense with its owning budget, as returned
// by list and report queries.
type ExpenseWithBudget struct {
	Expense *Expense
	Budget  *Budget
}
