package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finansync/backend/internal/application/adapter"
	domainerror "github.com/finansync/backend/internal/domain/error"
)

// chatUnavailableAnswer is returned when the AI model cannot be reached.
// Chat failures degrade to an apology rather than an error response.
const chatUnavailableAnswer = "I apologize, but I cannot process your question right now. Please check your spending data and try again."

// AnswerQuestionInput represents the input for a financial chat question.
type AnswerQuestionInput struct {
	UserID   uuid.UUID
	Question string
}

// AnswerQuestionOutput represents the output of a financial chat question.
type AnswerQuestionOutput struct {
	Answer string
}

// AnswerQuestionUseCase answers free-form questions about the user's
// finances, grounded on their budgets and recent expenses.
type AnswerQuestionUseCase struct {
	budgetRepo     adapter.BudgetRepository
	expenseRepo    adapter.ExpenseRepository
	insightService adapter.InsightService
}

// NewAnswerQuestionUseCase creates a new AnswerQuestionUseCase instance.
func NewAnswerQuestionUseCase(
	budgetRepo adapter.BudgetRepository,
	expenseRepo adapter.ExpenseRepository,
	insightService adapter.InsightService,
) *AnswerQuestionUseCase {
	return &AnswerQuestionUseCase{
		budgetRepo:     budgetRepo,
		expenseRepo:    expenseRepo,
		insightService: insightService,
	}
}

// Execute answers the question, degrading to an apology when the model
// is unavailable.
func (uc *AnswerQuestionUseCase) Execute(ctx context.Context, input AnswerQuestionInput) (*AnswerQuestionOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, domainerror.ErrMissingQuestion
	}

	snapshot, err := buildSnapshot(ctx, uc.budgetRepo, uc.expenseRepo, input.UserID, chatExpenseLimit, false)
	if err != nil {
		return nil, fmt.Errorf("failed to build financial snapshot: %w", err)
	}

	answer, err := uc.insightService.AnswerQuestion(ctx, input.Question, *snapshot)
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			slog.Warn("AI chat failed, returning fallback answer", "error", err)
		}
		answer = chatUnavailableAnswer
	}

	return &AnswerQuestionOutput{Answer: answer}, nil
}
