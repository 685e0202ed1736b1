package handlers

import (
	"net/http"
	"strconv"

	"rentora/internal/common"
	"rentora/internal/dashboard"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DashboardHandlers handles the per-role summary endpoints
type DashboardHandlers struct {
	dashboardService *dashboard.Service
}

// NewDashboardHandlers creates a new dashboard handlers instance
func NewDashboardHandlers(dashboardService *dashboard.Service) *DashboardHandlers {
	return &DashboardHandlers{
		dashboardService: dashboardService,
	}
}

// GetLandlordDashboard handles GET /dashboard/landlord
func (h *DashboardHandlers) GetLandlordDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	summary, err := h.dashboardService.LandlordSummary(ctx, caller.ID)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetTenantDashboard handles GET /dashboard/tenant
func (h *DashboardHandlers) GetTenantDashboard(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	filter := dashboard.TenantFilter{}
	if leaseIDStr := c.QueryParam("lease_id"); leaseIDStr != "" {
		leaseID, err := uuid.Parse(leaseIDStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "lease_id is not a valid UUID")
		}
		filter.LeaseID = &leaseID
	}
	if rentStr := c.QueryParam("rent_amount"); rentStr != "" {
		rent, err := strconv.ParseFloat(rentStr, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "rent_amount is not a valid number")
		}
		filter.RentAmount = &rent
	}

	summary, err := h.dashboardService.TenantSummary(ctx, caller, filter)
	if err != nil {
		return common.RespondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
