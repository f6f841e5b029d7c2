package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewLogger emits one structured access line per request.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		logrus.WithFields(logrus.Fields{
			"method":   ctx.Method(),
			"path":     ctx.Path(),
			"status":   ctx.Response().StatusCode(),
			"ip":       ctx.IP(),
			"duration": time.Since(start).String(),
		}).Info("request")

		return err
	}
}
