package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rentora/internal/common"
	"rentora/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// memoryCache is an in-memory CacheService for middleware tests. Only the
// rate-limit counters do anything; expiry is ignored.
type memoryCache struct {
	counters map[string]int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{counters: make(map[string]int)}
}

func (m *memoryCache) GetDashboard(ctx context.Context, role string, userID uuid.UUID, dest interface{}) (bool, error) {
	return false, nil
}

func (m *memoryCache) SetDashboard(ctx context.Context, role string, userID uuid.UUID, payload interface{}, ttl time.Duration) error {
	return nil
}

func (m *memoryCache) InvalidateDashboard(ctx context.Context, role string, userID uuid.UUID) error {
	return nil
}

func (m *memoryCache) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	return m.counters[key] >= limit, nil
}

func (m *memoryCache) IncrementRateLimit(ctx context.Context, key string, window time.Duration) error {
	m.counters[key]++
	return nil
}

func (m *memoryCache) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return nil
}

func (m *memoryCache) GetString(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (m *memoryCache) Delete(ctx context.Context, key string) error {
	return nil
}

func serveWithRateLimit(cache *memoryCache, limit int, caller common.Caller) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/v1/properties", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"message": "created"})
	}, RateLimit(cache, "create-property", limit, time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/v1/properties", nil)
	req = req.WithContext(common.WithCaller(req.Context(), caller))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRateLimit_AllowsUpToLimit(t *testing.T) {
	cache := newMemoryCache()
	caller := common.Caller{ID: uuid.New(), Role: models.RoleLandlord, Email: "landlord@example.com"}

	for i := 0; i < 3; i++ {
		rec := serveWithRateLimit(cache, 3, caller)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := serveWithRateLimit(cache, 3, caller)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_CountersAreScopedPerCaller(t *testing.T) {
	cache := newMemoryCache()
	first := common.Caller{ID: uuid.New(), Role: models.RoleLandlord, Email: "first@example.com"}
	second := common.Caller{ID: uuid.New(), Role: models.RoleLandlord, Email: "second@example.com"}

	rec := serveWithRateLimit(cache, 1, first)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec = serveWithRateLimit(cache, 1, first)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = serveWithRateLimit(cache, 1, second)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRateLimit_RequiresAuthenticatedCaller(t *testing.T) {
	cache := newMemoryCache()
	e := echo.New()
	e.POST("/v1/properties", func(c echo.Context) error {
		return c.JSON(http.StatusCreated, map[string]string{"message": "created"})
	}, RateLimit(cache, "create-property", 1, time.Hour))

	req := httptest.NewRequest(http.MethodPost, "/v1/properties", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
