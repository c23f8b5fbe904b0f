package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:text"`
	BudgetID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	UpdatedAt   time.Time       `gorm:"not null"`

	Budget *BudgetModel `gorm:"foreignKey:BudgetID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:          m.ID,
		Name:        m.Name,
		Amount:      m.Amount,
		Description: m.Description,
		BudgetID:    m.BudgetID,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithBudget converts an ExpenseModel with a preloaded budget to
// an ExpenseWithBudget pair. The Budget association must be loaded.
func (m *ExpenseModel) ToEntityWithBudget() *entity.ExpenseWithBudget {
	pair := &entity.ExpenseWithBudget{Expense: m.ToEntity()}
	if m.Budget != nil {
		pair.Budget = m.Budget.ToEntity()
	}
	return pair
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:          expense.ID,
		Name:        expense.Name,
		Amount:      expense.Amount,
		Description: expense.Description,
		BudgetID:    expense.BudgetID,
		UserID:      expense.UserID,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
