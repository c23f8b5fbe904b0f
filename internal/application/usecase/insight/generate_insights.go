package insight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/application/adapter"
	"github.com/finansync/backend/internal/domain/entity"
)

// GenerateInsightsInput represents the input for insight generation.
type GenerateInsightsInput struct {
	UserID uuid.UUID
}

// GenerateInsightsOutput represents the output of insight generation.
type GenerateInsightsOutput struct {
	Insights []entity.SpendingInsight
}

// GenerateInsightsUseCase produces spending insights for a user. When
// the AI model is unavailable or returns nothing usable it degrades to
// rule-based insights instead of failing.
type GenerateInsightsUseCase struct {
	budgetRepo     adapter.BudgetRepository
	expenseRepo    adapter.ExpenseRepository
	insightService adapter.InsightService
}

// NewGenerateInsightsUseCase creates a new GenerateInsightsUseCase instance.
func NewGenerateInsightsUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	insightService adapter.InsightService,
) *GenerateInsightsUseCase {
	return &GenerateInsightsUseCase{
		budgetRepo:     budgetRepo,
		expenseRepo:    expenseRepo,
		insightService: insightService,
	}
}

// Execute generates spending insights over the user's financial data.
func (uc *GenerateInsightsUseCase) Execute(ctx context.Context, input GenerateInsightsInput) (*GenerateInsightsOutput, error) {
	snapshot, err := buildSnapshot(ctx, uc.budgetRepo, uc.expenseRepo, input.UserID, insightExpenseLimit, true)
	if err != nil {
		return nil, fmt.Errorf("failed to build financial snapshot: %w", err)
	}

	insights, err := uc.insightService.GenerateInsights(ctx, *snapshot)
	if err != nil || len(insights) == 0 {
		if err != nil {
			slog.Warn("AI insight generation failed, using fallback", "error", err)
		}
		insights = FallbackInsights(snapshot)
	}

	return &GenerateInsightsOutput{Insights: insights}, nil
}

// FallbackInsights derives rule-based insights from the snapshot: one
// warning per exceeded budget, or a single getting-started suggestion
// when nothing is over.
func FallbackInsights(snapshot *entity.FinancialSnapshot) []entity.SpendingInsight {
	var insights []entity.SpendingInsight

	for _, b := range snapshot.Budgets {
		if b.Percentage > 100 {
			insights = append(insights, entity.SpendingInsight{
				Type:        entity.InsightTypeWarning,
				Title:       fmt.Sprintf("%s Budget Exceeded", b.Name),
				Description: fmt.Sprintf("You've spent %.0f%% of your %s budget this month.", b.Percentage, b.Name),
				Actionable:  fmt.Sprintf("Review recent %s expenses and look for areas to cut back.", b.Name),
				Category:    b.Name,
			})
		}
	}

	if len(insights) == 0 {
		insights = append(insights, entity.SpendingInsight{
			Type:        entity.InsightTypeSuggestion,
			Title:       "Start Tracking Expenses",
			Description: "Add more expenses to get personalized financial insights.",
			Actionable:  "Create budgets and log your daily expenses consistently.",
		})
	}

	return insights
}
