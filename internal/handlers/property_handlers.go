package handlers

import (
	"net/http"
	"strconv"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/services"

	"github.com/labstack/echo/v4"
)

// PropertyHandlers handles HTTP requests for property listings
type PropertyHandlers struct {
	propertyService services.PropertyServiceInterface
}

// NewPropertyHandlers creates a new property handlers instance
func NewPropertyHandlers(propertyService services.PropertyServiceInterface) *PropertyHandlers {
	return &PropertyHandlers{
		propertyService: propertyService,
	}
}

// paginationParams reads limit/offset query params with sane fallbacks.
func paginationParams(c echo.Context) (int, int) {
	limit := 0
	offset := 0
	if limitParam := c.QueryParam("limit"); limitParam != "" {
		if l, err := strconv.Atoi(limitParam); err == nil && l > 0 {
			limit = l
		}
	}
	if offsetParam := c.QueryParam("offset"); offsetParam != "" {
		if o, err := strconv.Atoi(offsetParam); err == nil && o >= 0 {
			offset = o
		}
	}
	return limit, offset
}

// CreateProperty handles POST /properties
func (h *PropertyHandlers) CreateProperty(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req services.CreatePropertyInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	property, err := h.propertyService.CreateProperty(ctx, caller.ID, &req)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":  "Property created successfully",
		"property": property,
	})
}

// ListProperties handles GET /properties
func (h *PropertyHandlers) ListProperties(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, offset := paginationParams(c)
	properties, err := h.propertyService.ListProperties(ctx, caller, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"properties": properties,
		"count":      len(properties),
	})
}

// GetProperty handles GET /properties/:id
func (h *PropertyHandlers) GetProperty(c echo.Context) error {
	ctx := c.Request().Context()

	propertyID, err := common.ValidateUUID(c.Param("id"), "property id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	property, err := h.propertyService.GetProperty(ctx, propertyID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, property)
}

// UpdateProperty handles PATCH /properties/:id
func (h *PropertyHandlers) UpdateProperty(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	propertyID, err := common.ValidateUUID(c.Param("id"), "property id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var patch models.PropertyPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	property, err := h.propertyService.UpdateProperty(ctx, caller.ID, propertyID, &patch)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "Property updated successfully",
		"property": property,
	})
}

// DeleteProperty handles DELETE /properties/:id
func (h *PropertyHandlers) DeleteProperty(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	propertyID, err := common.ValidateUUID(c.Param("id"), "property id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.propertyService.DeleteProperty(ctx, caller.ID, propertyID); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Property deleted successfully",
	})
}
