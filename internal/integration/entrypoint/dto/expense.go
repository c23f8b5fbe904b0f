package dto

import (
	"time"

	"github.com/finansync/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	BudgetID    string  `json:"budgetId"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
	BudgetID    string  `json:"budgetId"`
}

// ExpenseBudgetResponse is the budget summary embedded in expense responses.
type ExpenseBudgetResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ExpenseResponse represents a single expense with its owning budget.
type ExpenseResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Amount      float64               `json:"amount"`
	Description string                `json:"description,omitempty"`
	BudgetID    string                `json:"budgetId"`
	Budget      ExpenseBudgetResponse `json:"budget"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an ExpenseWithBudget to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.ExpenseWithBudget) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.Expense.ID.String(),
		Name:        e.Expense.Name,
		Amount:      e.Expense.Amount.InexactFloat64(),
		Description: e.Expense.Description,
		BudgetID:    e.Expense.BudgetID.String(),
		CreatedAt:   e.Expense.CreatedAt,
		UpdatedAt:   e.Expense.UpdatedAt,
	}
	if e.Budget != nil {
		resp.Budget = ExpenseBudgetResponse{
			ID:    e.Budget.ID.String(),
			Name:  e.Budget.Name,
			Icon:  e.Budget.Icon,
			Color: e.Budget.Color,
		}
	}
	return resp
}

// ToExpenseListResponse converts a list of ExpenseWithBudget to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.ExpenseWithBudget) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: responses,
	}
}
