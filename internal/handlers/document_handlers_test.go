package handlers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentora/internal/common"
	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStorageService mocks the StorageService interface for testing
type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadDocument(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, objectSize int64) error {
	args := m.Called(ctx, bucketName, objectName, contentType, reader, objectSize)
	return args.Error(0)
}

func (m *MockStorageService) GetPresignedURL(bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockStorageService) DeleteDocument(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *MockStorageService) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func serveUpload(storage *MockStorageService, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	h := NewDocumentHandlers(storage, "rentora-documents")
	e := echo.New()
	e.POST("/v1/documents", h.UploadDocument)

	caller := common.Caller{ID: uuid.New(), Role: models.RoleTenant, Email: "tenant@example.com"}
	req := httptest.NewRequest(http.MethodPost, "/v1/documents", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	req = req.WithContext(common.WithCaller(req.Context(), caller))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestUploadDocument_EmptyFileIsClientError(t *testing.T) {
	storage := &MockStorageService{}
	body, contentType := multipartUpload(t, "empty.pdf", []byte{})

	rec := serveUpload(storage, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	storage.AssertNotCalled(t, "UploadDocument")
}

func TestUploadDocument_PngAccepted(t *testing.T) {
	storage := &MockStorageService{}
	pngHeader := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	body, contentType := multipartUpload(t, "photo.png", pngHeader)

	storage.On("UploadDocument", mock.Anything, "rentora-documents", mock.AnythingOfType("string"),
		"image/png", mock.Anything, int64(len(pngHeader))).Return(nil).Once()
	storage.On("GetPresignedURL", "rentora-documents", mock.AnythingOfType("string"), 24*time.Hour).
		Return("https://storage.example.com/photo.png", nil).Once()

	rec := serveUpload(storage, body, contentType)

	assert.Equal(t, http.StatusCreated, rec.Code)
	storage.AssertExpectations(t)
}

func TestUploadDocument_RejectsUnknownType(t *testing.T) {
	storage := &MockStorageService{}
	body, contentType := multipartUpload(t, "notes.txt", []byte("plain text, not a document"))

	rec := serveUpload(storage, body, contentType)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	storage.AssertNotCalled(t, "UploadDocument")
}
