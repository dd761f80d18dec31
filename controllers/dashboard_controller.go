package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/internal/error/response"
	"github.com/aartibhkm/admin2/services"
	"github.com/aartibhkm/admin2/services/container"
)

// InterfaceDashboardController defines the dashboard controller interface
type InterfaceDashboardController interface {
	GetStats()
	GetDailyBookings()
	GetLocationBookings()
}

// DashboardController handles dashboard aggregate requests
type DashboardController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(ctx *gin.Context, container *container.ServiceContainer) *DashboardController {
	return &DashboardController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleDashboardFunc returns a gin handler dispatching dashboard requests
func HandleDashboardFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewDashboardController(ctx, container)

		switch method {
		case "getStats":
			controller.GetStats()
		case "getDailyBookings":
			controller.GetDailyBookings()
		case "getLocationBookings":
			controller.GetLocationBookings()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "invalid method",
				"data":    nil,
			})
		}
	}
}

// 1. GetStats returns the composite dashboard payload
// @Summary      Dashboard statistics
// @Description  Seven counts plus the five most recent bookings and contacts
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=services.DashboardStats}
// @Failure      500  {object}  response.Response
// @Router       /dashboard/stats [get]
// @Security     TokenAuth
func (c *DashboardController) GetStats() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	stats, err := dashboardService.GetStats()
	if err != nil {
		config.Error("dashboard stats failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, stats)
}

// 2. GetDailyBookings returns per-day booking counts for the last 30 days
// @Summary      Daily booking counts
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]services.DailyBookingCount}
// @Failure      500  {object}  response.Response
// @Router       /dashboard/bookings/daily [get]
// @Security     TokenAuth
func (c *DashboardController) GetDailyBookings() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	daily, err := dashboardService.GetDailyBookings()
	if err != nil {
		config.Error("daily booking stats failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, daily)
}

// 3. GetLocationBookings returns booking counts per location
// @Summary      Booking counts by location
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  response.Response{data=[]services.LocationBookingCount}
// @Failure      500  {object}  response.Response
// @Router       /dashboard/locations [get]
// @Security     TokenAuth
func (c *DashboardController) GetLocationBookings() {
	dashboardService := c.Container.GetService("dashboard").(services.InterfaceDashboardService)
	locations, err := dashboardService.GetLocationBookings()
	if err != nil {
		config.Error("location booking stats failed: %v", err)
		response.ServerError(c.Ctx)
		return
	}

	response.Success(c.Ctx, locations)
}
