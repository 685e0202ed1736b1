package handlers

import (
	"net/http"

	"rentora/internal/common"
	"rentora/internal/services"

	"github.com/labstack/echo/v4"
)

// RequestHandlers handles HTTP requests for property rental requests
type RequestHandlers struct {
	requestService services.RequestServiceInterface
}

// NewRequestHandlers creates a new request handlers instance
func NewRequestHandlers(requestService services.RequestServiceInterface) *RequestHandlers {
	return &RequestHandlers{
		requestService: requestService,
	}
}

// CreateRequest handles POST /requests
func (h *RequestHandlers) CreateRequest(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req struct {
		PropertyID string `json:"property_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	propertyID, err := common.ValidateUUID(req.PropertyID, "property_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	request, err := h.requestService.CreateRequest(ctx, caller.ID, propertyID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Request submitted successfully",
		"request": request,
	})
}

// ListRequests handles GET /requests
func (h *RequestHandlers) ListRequests(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, offset := paginationParams(c)
	requests, err := h.requestService.ListRequests(ctx, caller, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": requests,
		"count":    len(requests),
	})
}
