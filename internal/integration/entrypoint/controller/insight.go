package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finansync/backend/internal/application/usecase/insight"
	domainerror "github.com/finansync/backend/internal/domain/error"
	"github.com/finansync/backend/internal/integration/entrypoint/dto"
	"github.com/finansync/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles HTTP requests for AI-powered spending insights.
type InsightController struct {
	insightsUseCase *insight.GenerateInsightsUseCase
	chatUseCase     *insight.AnswerQuestionUseCase
}

// NewInsightController creates a new InsightController instance.
func NewInsightController(
	insightsUseCase *insight.GenerateInsightsUseCase,
	chatUseCase *insight.AnswerQuestionUseCase,
) *InsightController {
	return &InsightController{
		insightsUseCase: insightsUseCase,
		chatUseCase:     chatUseCase,
	}
}

// GetInsights handles GET /api/v1/ai/insights requests.
func (c *InsightController) GetInsights(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.insightsUseCase.Execute(ctx.Request.Context(), insight.GenerateInsightsInput{
		UserID: userID,
	})
	if err != nil {
		slog.Error("Failed to generate insights", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to generate insights",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.InsightListResponse{Insights: output.Insights})
}

// Chat handles POST /api/v1/ai/chat requests.
func (c *InsightController) Chat(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Question is required",
		})
		return
	}

	output, err := c.chatUseCase.Execute(ctx.Request.Context(), insight.AnswerQuestionInput{
		UserID:   userID,
		Question: req.Question,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrMissingQuestion) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Question is required",
			})
			return
		}

		slog.Error("Failed to answer question", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to process question",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Answer: output.Answer})
}
