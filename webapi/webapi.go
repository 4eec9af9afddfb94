// Package webapi provides the HTTP surface of the ledger.
// It is organized into sub-packages:
// - account: customer registration and lifecycle endpoints
// - ledger: statement, deposit, withdraw and balance endpoints
// - auth: placeholder login and logout
package webapi

import (
	"errors"
	"strings"

	_ "github.com/amirasaad/ledger/docs" // swagger registry
	"github.com/amirasaad/ledger/pkg/app"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	authweb "github.com/amirasaad/ledger/webapi/auth"
	"github.com/amirasaad/ledger/webapi/common"
	ledgerweb "github.com/amirasaad/ledger/webapi/ledger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return common.ErrorResponseJSON(c, fe.Code, utils.StatusMessage(fe.Code), fe.Message)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	rateLimit := app.Config.RateLimit
	fiberApp.Use(limiter.New(limiter.Config{
		Max:          rateLimit.MaxRequests,
		Expiration:   rateLimit.Window,
		KeyGenerator: clientIP,
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
				"Rate limit exceeded",
			)
		},
	}))
	fiberApp.Use(recover.New())
	if app.Config.Env != "test" {
		fiberApp.Use(logger.New())
	}

	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running! 🚀")
	})

	accountweb.Routes(fiberApp, app.AccountService, app.AuthService, app.Config.Auth)
	ledgerweb.Routes(fiberApp, app.AccountService, app.LedgerService)
	authweb.AuthRoutes(fiberApp, app.AuthService)
	return fiberApp
}

// clientIP keys rate limiting by the first X-Forwarded-For hop, then X-Real-IP,
// then the peer address.
func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get(fiber.HeaderXForwardedFor); forwardedFor != "" {
		first, _, _ := strings.Cut(forwardedFor, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
