package handlers

import (
	"net/http"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/services"

	"github.com/labstack/echo/v4"
)

// LeaseHandlers handles HTTP requests for leases
type LeaseHandlers struct {
	leaseService services.LeaseServiceInterface
}

// NewLeaseHandlers creates a new lease handlers instance
func NewLeaseHandlers(leaseService services.LeaseServiceInterface) *LeaseHandlers {
	return &LeaseHandlers{
		leaseService: leaseService,
	}
}

// CreateLease handles POST /leases
func (h *LeaseHandlers) CreateLease(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req services.CreateLeaseInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	lease, err := h.leaseService.CreateLease(ctx, caller.ID, &req)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Lease created successfully",
		"lease":   lease,
	})
}

// ListLeases handles GET /leases
func (h *LeaseHandlers) ListLeases(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, offset := paginationParams(c)
	leases, err := h.leaseService.ListLeases(ctx, caller, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"leases": leases,
		"count":  len(leases),
	})
}

// GetLease handles GET /leases/:id
func (h *LeaseHandlers) GetLease(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	leaseID, err := common.ValidateUUID(c.Param("id"), "lease id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lease, err := h.leaseService.GetLease(ctx, caller, leaseID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, lease)
}

// UpdateLease handles PATCH /leases/:id
func (h *LeaseHandlers) UpdateLease(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	leaseID, err := common.ValidateUUID(c.Param("id"), "lease id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var patch models.LeasePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	lease, err := h.leaseService.UpdateLease(ctx, caller.ID, leaseID, &patch)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Lease updated successfully",
		"lease":   lease,
	})
}

// DeleteLease handles DELETE /leases/:id
func (h *LeaseHandlers) DeleteLease(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	leaseID, err := common.ValidateUUID(c.Param("id"), "lease id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.leaseService.DeleteLease(ctx, caller.ID, leaseID); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Lease deleted successfully",
	})
}
