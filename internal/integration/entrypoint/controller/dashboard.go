package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finansync/backend/internal/application/usecase/dashboard"
	"github.com/finansync/backend/internal/integration/entrypoint/dto"
	"github.com/finansync/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles the dashboard endpoint.
type DashboardController struct {
	getUseCase *dashboard.GetDashboardUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(getUseCase *dashboard.GetDashboardUseCase) *DashboardController {
	return &DashboardController{
		getUseCase: getUseCase,
	}
}

// Get handles GET /dashboard requests.
func (c *DashboardController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), dashboard.GetDashboardInput{UserID: userID})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load dashboard",
		})
		return
	}

	ctx.JSON(http.StatusOK, output.Dashboard)
}
