package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flock/internal/services"
	"flock/pkg/middleware"
	"flock/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// Report godoc
// @Summary Dashboard summary for the caller's scope
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) Report(c *gin.Context) {
	actor, ok := middleware.ActingUserFrom(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No authenticated user")
		return
	}

	report, err := d.dashboardService.BuildDashboard(c.Request.Context(), actor)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, report, "Dashboard built")
}
