package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
	domainerror "github.com/finansync/backend/internal/domain/error"
	"github.com/finansync/backend/internal/integration/persistence/model"
)

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves an expense with its owning budget, scoped to
// the owner.
func (r *expenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.ExpenseWithBudget, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Budget").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntityWithBudget(), nil
}

// FindByUser retrieves expenses for a user, newest first.
func (r *expenseRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.ExpenseWithBudget, error) {
	query := r.db.WithContext(ctx).
		Preload("Budget").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var expenseModels []model.ExpenseModel
	if result := query.Find(&expenseModels); result.Error != nil {
		return nil, result.Error
	}
	return toEntitiesWithBudget(expenseModels), nil
}

// FindByUserInRange retrieves the user's expenses created within
// [from, to], oldest first.
func (r *expenseRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.ExpenseWithBudget, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Budget").
		Where("user_id = ? AND created_at >= ? AND created_at <= ?", userID, from, to).
		Order("created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntitiesWithBudget(expenseModels), nil
}

// SumByBudget returns total spend grouped by budget ID, optionally
// restricted to a created_at window.
func (r *expenseRepository) SumByBudget(ctx context.Context, userID uuid.UUID, from, to *time.Time) (map[uuid.UUID]decimal.Decimal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("budget_id, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("created_at <= ?", *to)
	}

	var rows []struct {
		BudgetID uuid.UUID
		Total    decimal.Decimal
	}
	if result := query.Group("budget_id").Scan(&rows); result.Error != nil {
		return nil, result.Error
	}

	totals := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.BudgetID] = row.Total
	}
	return totals, nil
}

// CountByBudget returns the number of expenses attached to a budget.
func (r *expenseRepository) CountByBudget(ctx context.Context, budgetID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("budget_id = ?", budgetID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// Update updates an existing expense in the database.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Save(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes an expense from the database.
func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

func toEntitiesWithBudget(expenseModels []model.ExpenseModel) []*entity.ExpenseWithBudget {
	expenses := make([]*entity.ExpenseWithBudget, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntityWithBudget()
	}
	return expenses
}
