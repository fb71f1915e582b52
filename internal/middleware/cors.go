package middleware

import (
	"strings"

	"matchmaker-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CORSConfig holds CORS configuration. An empty AllowedSuffix admits every
// origin, which is what the public search UI needs.
type CORSConfig struct {
	AllowedSuffix string
}

// CORS returns a Fiber handler that reflects allowed origins and answers
// preflight requests itself. Credentials allowed.
func CORS(cfg CORSConfig) fiber.Handler {
	suffix := strings.ToLower(strings.TrimSpace(cfg.AllowedSuffix))
	return func(c *fiber.Ctx) error {
		origin := c.Get("Origin")
		// No origin (e.g. same-origin or tools): allow
		if origin == "" {
			return c.Next()
		}
		if suffix != "" && !strings.HasSuffix(strings.ToLower(origin), suffix) && !isLocalOrigin(origin) {
			return response.Error(c, "Not allowed by CORS", fiber.StatusForbidden, nil)
		}
		setCORSHeaders(c, origin)
		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.Next()
	}
}

func isLocalOrigin(origin string) bool {
	return strings.HasPrefix(origin, "http://localhost:") || strings.HasPrefix(origin, "http://127.0.0.1:")
}

func setCORSHeaders(c *fiber.Ctx, origin string) {
	c.Set("Access-Control-Allow-Origin", origin)
	c.Set("Access-Control-Allow-Credentials", "true")
	c.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Set("Access-Control-Allow-Headers", "Content-Type, X-Trace-Id")
	c.Set("Vary", "Origin")
}
