package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finansync/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_budgets_user_name"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Icon      string          `gorm:"type:varchar(50);default:'💰'"`
	Color     string          `gorm:"type:varchar(7);default:'#3b82f6'"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_user_name"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		Name:      m.Name,
		Amount:    m.Amount,
		Icon:      m.Icon,
		Color:     m.Color,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        budget.ID,
		Name:      budget.Name,
		Amount:    budget.Amount,
		Icon:      budget.Icon,
		Color:     budget.Color,
		UserID:    budget.UserID,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
