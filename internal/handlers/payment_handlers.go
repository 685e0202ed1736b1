package handlers

import (
	"net/http"

	"rentora/internal/common"
	"rentora/internal/services"

	"github.com/labstack/echo/v4"
)

// PaymentHandlers handles HTTP requests for rent payments
type PaymentHandlers struct {
	paymentService services.PaymentServiceInterface
}

// NewPaymentHandlers creates a new payment handlers instance
func NewPaymentHandlers(paymentService services.PaymentServiceInterface) *PaymentHandlers {
	return &PaymentHandlers{
		paymentService: paymentService,
	}
}

// RecordPayment handles POST /payments
func (h *PaymentHandlers) RecordPayment(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req services.RecordPaymentInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	payment, err := h.paymentService.RecordPayment(ctx, caller.ID, &req)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Payment recorded successfully",
		"payment": payment,
	})
}

// ListPayments handles GET /payments
func (h *PaymentHandlers) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, offset := paginationParams(c)
	payments, err := h.paymentService.ListPayments(ctx, caller, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"payments": payments,
		"count":    len(payments),
	})
}

// CreateSubaccount handles POST /payments/subaccount
func (h *PaymentHandlers) CreateSubaccount(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req services.CreateSubaccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	data, err := h.paymentService.CreateSubaccount(ctx, caller.ID, &req)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Subaccount created successfully",
		"subaccount": data,
	})
}

// InitializePayment handles POST /payments/initialize
func (h *PaymentHandlers) InitializePayment(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req struct {
		LeaseID string `json:"lease_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	leaseID, err := common.ValidateUUID(req.LeaseID, "lease_id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.paymentService.InitializePayment(ctx, caller, leaseID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// VerifyPayment handles GET /payments/verify/:reference
func (h *PaymentHandlers) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	reference := c.Param("reference")
	payment, err := h.paymentService.VerifyPayment(ctx, caller.ID, reference)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Payment verified successfully",
		"payment": payment,
	})
}
