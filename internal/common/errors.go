package common

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Kind classifies a domain error so handlers can map it to an HTTP status
// without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindUpstream
)

// DomainError is the error type services return for expected failures.
// Anything that is not a DomainError surfaces as a 500 with a generic message.
type DomainError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

func Validationf(format string, args ...interface{}) error {
	return &DomainError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) error {
	return &DomainError{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) error {
	return &DomainError{Kind: KindForbidden, Message: message}
}

func NotFound(resource string) error {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

func Conflict(message string) error {
	return &DomainError{Kind: KindConflict, Message: message}
}

func Upstreamf(err error, format string, args ...interface{}) error {
	return &DomainError{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether err is a DomainError of the given kind.
func IsKind(err error, kind Kind) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Kind == kind
}

var kindCodes = map[Kind]struct {
	status int
	code   string
}{
	KindValidation:   {http.StatusBadRequest, "VALIDATION_ERROR"},
	KindUnauthorized: {http.StatusUnauthorized, "UNAUTHORIZED"},
	KindForbidden:    {http.StatusForbidden, "FORBIDDEN"},
	KindNotFound:     {http.StatusNotFound, "NOT_FOUND"},
	KindConflict:     {http.StatusConflict, "CONFLICT"},
	KindUpstream:     {http.StatusBadGateway, "UPSTREAM_ERROR"},
}

// RespondError translates a service error into the standard JSON envelope.
func RespondError(c echo.Context, err error) error {
	var de *DomainError
	if errors.As(err, &de) {
		mapping := kindCodes[de.Kind]
		return c.JSON(mapping.status, CreateErrorResponse(mapping.code, de.Message, nil))
	}
	log.Printf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return SendServerError(c, "operation could not be completed")
}
