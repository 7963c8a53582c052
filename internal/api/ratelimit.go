package api

import (
	"net/http"

	"github.com/labstack/echo/v5"
	"golang.org/x/time/rate"
)

// RateLimiter returns middleware that rejects requests beyond rps requests
// per second (with the given burst) with 429.  A single limiter is shared by
// all clients; the server has no per-user state to key on.
func RateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			if !limiter.Allow() {
				return writeError(c, http.StatusTooManyRequests, "rate_limit_error", "too many requests", "", "")
			}
			return next(c)
		}
	}
}
