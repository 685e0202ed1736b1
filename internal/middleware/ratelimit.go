package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"rentora/internal/caching"
	"rentora/internal/common"

	"github.com/labstack/echo/v4"
)

// RateLimit caps how often one caller may hit a route. Counters live in redis
// keyed by route name and caller id; a cache outage fails open so the API does
// not go down with redis.
func RateLimit(cacheSvc caching.CacheService, name string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			caller, ok := common.GetCallerFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
			}

			key := fmt.Sprintf("%s:%s", name, caller.ID)
			limited, err := cacheSvc.IsRateLimited(ctx, key, limit, window)
			if err != nil {
				log.Printf("rate-limit check failed for %s: %v", key, err)
			} else if limited {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests, try again later")
			}

			if err := cacheSvc.IncrementRateLimit(ctx, key, window); err != nil {
				log.Printf("rate-limit increment failed for %s: %v", key, err)
			}
			return next(c)
		}
	}
}
