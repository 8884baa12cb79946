// Package webapi exposes the conversion pipeline over HTTP.
// It is organized into sub-packages:
// - conversion: convert and swap endpoints
// - currency: supported currency listing
// - common: response envelopes and binding helpers
package webapi

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/fxconvert/pkg/app"
	"github.com/amirasaad/fxconvert/pkg/config"
	"github.com/amirasaad/fxconvert/webapi/common"
	conversionweb "github.com/amirasaad/fxconvert/webapi/conversion"
	currencyweb "github.com/amirasaad/fxconvert/webapi/currency"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "fxconvert",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	rateLimit := a.Config.RateLimit
	if rateLimit == nil {
		rateLimit = &config.RateLimit{MaxRequests: 100, Window: time.Minute}
	}

	// Uses X-Forwarded-For header when behind a proxy
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        rateLimit.MaxRequests,
		Expiration: rateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("fxconvert API is running")
	})
	fiberApp.Get("/health", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", nil)
	})
	fiberApp.Get("/health/upstream", func(c *fiber.Ctx) error {
		hc, ok := a.HealthChecker()
		if !ok {
			return common.ErrorResponseJSON(c, fiber.StatusNotImplemented, "Health check unavailable",
				"The configured rate provider has no health probe")
		}
		if err := hc.CheckHealth(c.UserContext()); err != nil {
			return common.FailureResponseJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Exchange rate provider reachable", fiber.Map{
			"provider": a.Deps.RateFetcher.Name(),
		})
	})

	conversionweb.Routes(fiberApp, a.ConversionService, a.Deps.Logger)
	currencyweb.Routes(fiberApp)
	return fiberApp
}
