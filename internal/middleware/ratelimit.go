package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"go-portfolio-api/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
)

// RateLimit rejects requests over the sliding-window budget with 429 and
// a Retry-After header. Keyed by client IP.
func RateLimit(limiter *ratelimit.Limiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		allowed, retryAfter := limiter.Allow(clientIP(c))
		if !allowed {
			seconds := int(retryAfter.Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Set("Retry-After", strconv.Itoa(seconds))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": fmt.Sprintf("Rate limit exceeded. Try again in %d seconds.", seconds),
			})
		}
		return c.Next()
	}
}

// clientIP resolves the caller's address, honoring proxy headers.
func clientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "unknown"
}
