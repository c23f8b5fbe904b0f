package dto

import (
	"time"

	"github.com/finansync/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for budget creation.
// Amount is validated in the use case so a missing amount and a negative
// amount produce distinct errors.
type CreateBudgetRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Icon   string  `json:"icon,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Icon   string  `json:"icon,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// BudgetResponse represents a single budget with derived spending stats.
type BudgetResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Amount       float64   `json:"amount"`
	Icon         string    `json:"icon"`
	Color        string    `json:"color"`
	Spent        float64   `json:"spent"`
	Percentage   float64   `json:"percentage"`
	Remaining    float64   `json:"remaining"`
	IsOverBudget bool      `json:"isOverBudget"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a BudgetWithStats to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.BudgetWithStats) BudgetResponse {
	return BudgetResponse{
		ID:           b.Budget.ID.String(),
		Name:         b.Budget.Name,
		Amount:       b.Budget.Amount.InexactFloat64(),
		Icon:         b.Budget.Icon,
		Color:        b.Budget.Color,
		Spent:        b.Spent.InexactFloat64(),
		Percentage:   b.Percentage,
		Remaining:    b.Remaining.InexactFloat64(),
		IsOverBudget: b.IsOverBudget,
		CreatedAt:    b.Budget.CreatedAt,
		UpdatedAt:    b.Budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of BudgetWithStats to a BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetWithStats) BudgetListResponse {
	responses := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		responses[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{
		Budgets: responses,
	}
}
