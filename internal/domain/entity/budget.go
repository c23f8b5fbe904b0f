// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultBudgetIcon is the default icon for budgets.
const DefaultBudgetIcon = "💰"

// DefaultBudgetColor is the default color for budgets.
const DefaultBudgetColor = "#3b82f6"

// Budget represents a named spending category with a monetary limit,
// owned by one user. The budget name is unique per user.
type Budget struct {
	ID        uuid.UUID
	Name      string
	Amount    decimal.Decimal
	Icon      string
	Color     string
	UserID    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
// Defaulting logic for icon and color is applied in the use case layer
// before calling this constructor.
func NewBudget(name string, amount decimal.Decimal, icon, color string, userID uuid.UUID) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		Icon:      icon,
		Color:     color,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// BudgetWithStats pairs a budget with its derived spending statistics.
// Spent, Percentage, Remaining and IsOverBudget are always computed at
// read time from the expense relationship, never persisted.
type BudgetWithStats struct {
	Budget       *Budget
	Spent        decimal.Decimal
	Percentage   float64
	Remaining    decimal.Decimal
	IsOverBudget bool
}

// NewBudgetWithStats computes the derived statistics for a budget given
// the total spent against it. A zero budget amount yields a 0 percentage.
func NewBudgetWithStats(budget *Budget, spent decimal.Decimal) *BudgetWithStats {
	percentage := 0.0
	if budget.Amount.IsPositive() {
		percentage, _ = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Float64()
	}

	return &BudgetWithStats{
		Budget:       budget,
		Spent:        spent,
		Percentage:   percentage,
		Remaining:    budget.Amount.Sub(spent),
		IsOverBudget: spent.GreaterThan(budget.Amount),
	}
}
