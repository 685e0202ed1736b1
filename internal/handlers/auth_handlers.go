package handlers

import (
	"net/http"

	"rentora/internal/common"
	"rentora/internal/models"
	"rentora/internal/repositories"
	"rentora/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandlers handles signup, login and email verification
type AuthHandlers struct {
	authService services.AuthService
	userRepo    repositories.UserRepository
}

// NewAuthHandlers creates a new auth handlers instance
func NewAuthHandlers(authService services.AuthService, userRepo repositories.UserRepository) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		userRepo:    userRepo,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandlers) Signup(c echo.Context) error {
	ctx := c.Request().Context()

	var req services.SignupInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	result, err := h.authService.Signup(ctx, &req)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusCreated, result)
}

// Login handles POST /auth/login
func (h *AuthHandlers) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	result, err := h.authService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GoogleSignIn handles POST /auth/google
func (h *AuthHandlers) GoogleSignIn(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		IDToken string      `json:"id_token"`
		Role    models.Role `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if req.IDToken == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "id_token is required")
	}

	result, err := h.authService.GoogleSignIn(ctx, req.IDToken, req.Role)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// VerifyEmail handles POST /auth/verify-email
func (h *AuthHandlers) VerifyEmail(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req struct {
		OTP string `json:"otp"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.authService.VerifyEmailOTP(ctx, caller.ID, req.OTP); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Email verified successfully",
	})
}

// ResendOTP handles POST /auth/resend-otp
func (h *AuthHandlers) ResendOTP(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	if err := h.authService.ResendOTP(ctx, caller.ID); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Verification code sent",
	})
}

// Me handles GET /me
func (h *AuthHandlers) Me(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	user, err := h.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateMe handles PUT /me
func (h *AuthHandlers) UpdateMe(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var patch models.UserPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if patch.Name != nil {
		if err := common.ValidateRequiredString(*patch.Name, "name"); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if patch.ProfilePicture != nil && *patch.ProfilePicture != "" {
		if err := common.ValidateURLField(*patch.ProfilePicture, "profile_picture"); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	user, err := h.userRepo.GetByID(ctx, caller.ID)
	if err != nil {
		return common.RespondError(c, err)
	}

	patch.Apply(user)
	if err := h.userRepo.Update(ctx, user); err != nil {
		return common.RespondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Profile updated successfully",
		"user":    user,
	})
}
