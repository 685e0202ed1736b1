package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path"
	"strconv"
	"time"

	"rentora/internal/common"
	"rentora/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DocumentHandlers handles uploads of utility bills, lease documents and
// property photos. Objects go to the storage bucket; entities store only URLs.
type DocumentHandlers struct {
	storage services.StorageService
	bucket  string
}

// NewDocumentHandlers creates a new document handlers instance
func NewDocumentHandlers(storage services.StorageService, bucket string) *DocumentHandlers {
	return &DocumentHandlers{
		storage: storage,
		bucket:  bucket,
	}
}

// UploadDocument handles POST /documents
func (h *DocumentHandlers) UploadDocument(c echo.Context) error {
	ctx := c.Request().Context()

	caller, ok := common.GetCallerFromContext(ctx)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Document file is required")
	}

	const maxFileSize = 10 * 1024 * 1024
	if file.Size > maxFileSize {
		return echo.NewHTTPError(http.StatusBadRequest, "File size exceeds maximum limit of 10MB")
	}

	allowedTypes := map[string]bool{
		"image/jpeg":      true,
		"image/png":       true,
		"image/webp":      true,
		"application/pdf": true,
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open document file")
	}
	defer src.Close()

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if n == 0 {
		// err is io.EOF for a zero-byte upload; that is the client's mistake.
		return echo.NewHTTPError(http.StatusBadRequest, "Document file is empty")
	}
	if err != nil && err != io.EOF {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read file content")
	}
	contentType := http.DetectContentType(buffer[:n])

	if !allowedTypes[contentType] {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, WebP and PDF documents are allowed")
	}

	if _, err := src.Seek(0, 0); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to rewind file")
	}

	objectName := fmt.Sprintf("%s/%s%s", caller.ID, uuid.NewString(), path.Ext(file.Filename))
	if err := h.storage.UploadDocument(ctx, h.bucket, objectName, contentType, src, file.Size); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store document")
	}

	url, err := h.storage.GetPresignedURL(h.bucket, objectName, 24*time.Hour)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate document URL")
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"message": "Document uploaded successfully",
		"object":  objectName,
		"url":     url,
	})
}

// GetDocumentURL handles GET /documents/url?object=...
func (h *DocumentHandlers) GetDocumentURL(c echo.Context) error {
	if _, ok := common.GetCallerFromContext(c.Request().Context()); !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	objectName := c.QueryParam("object")
	if objectName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "object query parameter is required")
	}

	expiry := 24 * time.Hour
	if expiryStr := c.QueryParam("expiry_minutes"); expiryStr != "" {
		if minutes, err := strconv.Atoi(expiryStr); err == nil && minutes > 0 {
			expiry = time.Minute * time.Duration(minutes)
		}
	}

	url, err := h.storage.GetPresignedURL(h.bucket, objectName, expiry)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate document URL")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"url":        url,
		"expires_in": expiry.String(),
	})
}
