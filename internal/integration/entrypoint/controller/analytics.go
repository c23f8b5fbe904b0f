package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/finansync/backend/internal/application/usecase/analytics"
	"github.com/finansync/backend/internal/integration/entrypoint/dto"
	"github.com/finansync/backend/internal/integration/entrypoint/middleware"
)

// AnalyticsController handles the analytics endpoint.
type AnalyticsController struct {
	getUseCase *analytics.GetAnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(getUseCase *analytics.GetAnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /analytics requests. The months query parameter sets
// the trailing window, defaulting to twelve months.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	months := 0
	if monthsStr := ctx.Query("months"); monthsStr != "" {
		parsed, err := strconv.Atoi(monthsStr)
		if err == nil && parsed > 0 {
			months = parsed
		}
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), analytics.GetAnalyticsInput{
		UserID: userID,
		Months: months,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analytics",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Analytics)
}
