package handlers

import (
	"net/http"

	"rentora/internal/common"
	"rentora/internal/services"

	"github.com/labstack/echo/v4"
)

// InvitationHandlers handles HTTP requests for tenant invitations
type InvitationHandlers struct {
	invitationService services.InvitationServiceInterface
}

// NewInvitationHandlers creates a new invitation handlers instance
func NewInvitationHandlers(invitationService services.InvitationServiceInterface) *InvitationHandlers {
	return &InvitationHandlers{
		invitationService: invitationService,
	}
}

// CreateInvitation handles POST /invitations
func (h *InvitationHandlers) CreateInvitation(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req services.CreateInvitationInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	invitation, err := h.invitationService.CreateInvitation(ctx, caller.ID, &req)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":    "Invitation sent successfully",
		"invitation": invitation,
	})
}

// ListInvitations handles GET /invitations
func (h *InvitationHandlers) ListInvitations(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	limit, offset := paginationParams(c)
	invitations, err := h.invitationService.ListInvitations(ctx, caller, limit, offset)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"invitations": invitations,
		"count":       len(invitations),
	})
}

// AcceptInvitation handles POST /invitations/:id/accept
func (h *InvitationHandlers) AcceptInvitation(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	invitationID, err := common.ValidateUUID(c.Param("id"), "invitation id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invitation, err := h.invitationService.AcceptInvitation(ctx, caller, invitationID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Invitation accepted",
		"invitation": invitation,
	})
}

// DeclineInvitation handles POST /invitations/:id/decline
func (h *InvitationHandlers) DeclineInvitation(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	invitationID, err := common.ValidateUUID(c.Param("id"), "invitation id")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	invitation, err := h.invitationService.DeclineInvitation(ctx, caller, invitationID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "Invitation declined",
		"invitation": invitation,
	})
}
