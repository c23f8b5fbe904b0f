package adapter

import (
	"context"

	"github.com/finansync/backend/internal/domain/entity"
)

// InsightService defines the interface for AI-backed spending analysis.
type InsightService interface {
	// GenerateInsights asks the model for spending insights over the
	// user's financial snapshot. Returns an error when the model is
	// unavailable or its response cannot be parsed; callers fall back
	// to rule-based insights.
	GenerateInsights(ctx context.Context, snapshot entity.FinancialSnapshot) ([]entity.SpendingInsight, error)

	// AnswerQuestion answers a free-form question about the user's
	// finances, grounded on the snapshot.
	AnswerQuestion(ctx context.Context, question string, snapshot entity.FinancialSnapshot) (string, error)
}
