package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CapabilityLogger measures the latency of routes that call out to the AI
// capability, which dominate response times.
func CapabilityLogger() fiber.Handler {
	monitoredSuffixes := []string{
		"/news-analysis",
		"/deep-assessment",
		"/response",
		"/speech",
		"/import",
		"/extract",
		"/chat",
	}

	return func(c *fiber.Ctx) error {
		path := c.Path()

		shouldMonitor := false
		for _, suffix := range monitoredSuffixes {
			if strings.HasSuffix(path, suffix) {
				shouldMonitor = true
				break
			}
		}

		if !shouldMonitor {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		log.Printf(
			"[CAPABILITY] %s %s - %d - Duration: %v",
			c.Method(),
			path,
			c.Response().StatusCode(),
			duration,
		)

		return err
	}
}
