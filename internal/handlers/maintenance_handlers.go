package handlers

import (
	"net/http"

	"rentora/internal/common"
	"rentora/internal/services"

	"github.com/labstack/echo/v4"
)

// MaintenanceHandlers handles HTTP requests for maintenance reports
type MaintenanceHandlers struct {
	maintenanceService services.MaintenanceServiceInterface
}

// NewMaintenanceHandlers creates a new maintenance handlers instance
func NewMaintenanceHandlers(maintenanceService services.MaintenanceServiceInterface) *MaintenanceHandlers {
	return &MaintenanceHandlers{
		maintenanceService: maintenanceService,
	}
}

// CreateRequest handles POST /maintenance
func (h *MaintenanceHandlers) CreateRequest(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req struct {
		PropertyID  string `json:"property_id"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	propertyID, err := common.ValidateUUID(req.PropertyID, "property_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.maintenanceService.CreateRequest(ctx, caller.ID, propertyID, req.Description)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Maintenance request submitted successfully",
		"request": request,
	})
}

// ListRequests handles GET /maintenance
func (h *MaintenanceHandlers) ListRequests(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, offset := paginationParams(c)
	requests, err := h.maintenanceService.ListRequests(ctx, caller, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": requests,
		"count":    len(requests),
	})
}
