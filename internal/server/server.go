// Package server builds the HTTP application: middleware, error mapping and
// routes.
package server

import (
	"context"
	"log/slog"
	"time"

	"inventory-backend/internal/apperr"
	"inventory-backend/internal/config"
	"inventory-backend/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const internalErrorMessage = "Unexpected server error"

func init() {
	// Amounts go out as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// New returns the application with every route registered. Handlers use the
// shared database.DB, so it must be initialised before serving requests.
func New(cfg *config.Config, log *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "inventory-backend",
		ErrorHandler: ErrorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(accessLog(log))
	if cfg.MetricsEnabled {
		app.Use(metrics.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	registerRoutes(app.Group("/api"), cfg)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "route not found")
	})
	return app
}

// ErrorHandler writes {"error": message} with the status of the error kind.
// Unexpected errors are logged and their text is not sent to the client.
func ErrorHandler(log *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := apperr.Status(err)
		msg := err.Error()
		if status >= fiber.StatusInternalServerError {
			log.Error("request failed",
				"request_id", requestID(c),
				"method", c.Method(),
				"path", c.Path(),
				"error", err,
			)
			msg = internalErrorMessage
		}
		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
}

func accessLog(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = apperr.Status(err)
		}
		log.LogAttrs(context.Background(), slog.LevelInfo, "http request",
			slog.String("request_id", requestID(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("elapsed", time.Since(start)),
		)
		return err
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)
	return id
}
