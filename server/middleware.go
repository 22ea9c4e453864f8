package main

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	headerRequestID = "X-Request-ID"
	localsRequestID = "requestID"
	maxRequestIDLen = 64
)

// requestLogger tags each request with an ID and logs its outcome.
func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Locals(localsRequestID, id)
		c.Set(headerRequestID, id)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		attrs := []any{
			"requestID", id,
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"durationMs", time.Since(start).Milliseconds(),
		}
		if err != nil || status >= 400 {
			if err != nil {
				attrs = append(attrs, "error", err)
			}
			logger.Warn("request failed", attrs...)
		} else {
			logger.Info("request completed", attrs...)
		}
		return err
	}
}

func requestID(c fiber.Ctx) string {
	id, _ := c.Locals(localsRequestID).(string)
	return id
}

// validRequestID accepts caller IDs of at most maxRequestIDLen characters
// drawn from [A-Za-z0-9._-]. Anything else is replaced with a fresh uuid.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		switch c := id[i]; {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
