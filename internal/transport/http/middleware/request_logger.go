// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs every request with its request id. Server errors are
// logged at error level, client errors at warn.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the app error handler set the final status before logging
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", float64(time.Since(start).Microseconds()) / 1000.0,
			"bytes", len(c.Response().Body()),
			"ip", c.IP(),
			"request_id", reqID,
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			log.Errorw("request failed", fields...)
		case status >= fiber.StatusBadRequest:
			log.Warnw("request rejected", fields...)
		default:
			log.Infow("request", fields...)
		}
		return nil
	}
}
