// Package webapi exposes the bank over HTTP. Handlers live in sub-packages
// per resource:
//   - account: account endpoints and transfers
//   - bank: bank endpoints and transfer counters
package webapi

import (
	"errors"
	"strings"

	"github.com/amirasaad/bankcore/pkg/app"
	accountweb "github.com/amirasaad/bankcore/webapi/account"
	bankweb "github.com/amirasaad/bankcore/webapi/bank"
	"github.com/amirasaad/bankcore/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		AppName: "bankcore",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Request failed", err)
		},
	})

	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				// Take the first IP in the chain
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
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${latency} ${method} ${path}\n",
	}))

	// Health check endpoint
	fiberApp.Get(
		"/",
		func(c *fiber.Ctx) error {
			return c.SendString("BankCore API is running! 🚀")
		},
	)

	fiberApp.Get("/debug/routes", func(c *fiber.Ctx) error {
		var routeList []map[string]string
		for _, route := range fiberApp.GetRoutes(true) {
			if route.Path != "" {
				routeList = append(routeList, map[string]string{
					"method": route.Method,
					"path":   route.Path,
				})
			}
		}
		return c.JSON(routeList)
	})

	accountweb.Routes(fiberApp, app.AccountService, app.TransferService)
	bankweb.Routes(fiberApp, app.BankService, app.TransferService)

	// Anything unmatched becomes a 404 problem
	fiberApp.Use(func(c *fiber.Ctx) error {
		return common.ProblemDetailsJSON(c, "Not Found", fiber.ErrNotFound)
	})
	return fiberApp
}
