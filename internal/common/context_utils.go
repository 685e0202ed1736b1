package common

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserRoleKey  contextKey = "user_role"
	UserEmailKey contextKey = "user_email"
)

// Caller is the authenticated identity the auth middleware resolves for every
// protected handler.
type Caller struct {
	ID    uuid.UUID
	Role  models.Role
	Email string
}

// GetUserIDFromContext extracts the caller's user ID from the request context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetRoleFromContext extracts the caller's role from the request context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(UserRoleKey).(models.Role)
	return role, ok
}

// GetEmailFromContext extracts the caller's email from the request context.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetCallerFromContext extracts the full caller identity, failing if any part
// is missing.
func GetCallerFromContext(ctx context.Context) (Caller, bool) {
	id, ok := GetUserIDFromContext(ctx)
	if !ok {
		return Caller{}, false
	}
	role, ok := GetRoleFromContext(ctx)
	if !ok {
		return Caller{}, false
	}
	email, ok := GetEmailFromContext(ctx)
	if !ok {
		return Caller{}, false
	}
	return Caller{ID: id, Role: role, Email: email}, true
}

// WithCaller returns a context carrying the caller identity.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, caller.ID)
	ctx = context.WithValue(ctx, UserRoleKey, caller.Role)
	return context.WithValue(ctx, UserEmailKey, caller.Email)
}

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a validation error response
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]string{
		field: message,
	}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", "Validation failed", details))
}

// SendClientError sends a client error response
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("CLIENT_ERROR", message, nil))
}

// SendServerError sends a server error response
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse("SERVER_ERROR", message, nil))
}

// ValidateUUID validates UUID path/body parameters.
func ValidateUUID(idStr string, fieldName string) (uuid.UUID, error) {
	idStr = strings.TrimSpace(idStr)
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", fieldName)
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s is not a valid UUID", fieldName)
	}
	return id, nil
}

// ValidateRequiredString validates required string fields
func ValidateRequiredString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidatePositiveFloat validates positive float values with upper bounds
func ValidatePositiveFloat(value float64, fieldName string, maxValue float64) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	if value > maxValue {
		return fmt.Errorf("%s cannot exceed %.2f", fieldName, maxValue)
	}
	return nil
}

// ValidatePositiveInteger validates positive integer values with upper bounds
func ValidatePositiveInteger(value int, fieldName string, maxValue int) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive", fieldName)
	}
	if value > maxValue {
		return fmt.Errorf("%s cannot exceed %d", fieldName, maxValue)
	}
	return nil
}

// ValidateURLField checks that a stored document/photo reference is a
// well-formed absolute http(s) URL.
func ValidateURLField(raw, fieldName string) error {
	if strings.TrimSpace(raw) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("%s must be a valid http(s) URL", fieldName)
	}
	return nil
}

// ValidateDateOrder checks the start < end invariant shared by leases.
func ValidateDateOrder(start, end time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("end date must be after start date")
	}
	return nil
}

// SafeString safely handles string pointer operations
func SafeString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ValidatePaginationParams validates pagination parameters
func ValidatePaginationParams(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
