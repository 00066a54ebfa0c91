package web

import (
	"net/http"

	"booking-portal/internal/session"
	"booking-portal/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardUseCase usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUseCase: dashboardUseCase}
}

// @Summary Dashboard
// @Tags dashboard
// @Produce json
// @Success 200 {object} usecase.DashboardPage
// @Success 303 "Redirect to /login without a session"
// @Router /dashboard [get]
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	page, err := h.dashboardUseCase.Dashboard(requestContext(c), session.From(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
