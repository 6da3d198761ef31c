package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	app := fiber.New()
	app.Use(requestid.New())
	app.Use(RequestLogger(zap.New(core).Sugar()))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/bad", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusBadRequest) })
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(http.StatusBadGateway, "upstream") })
	return app, logs
}

func TestRequestLoggerLevels(t *testing.T) {
	tests := []struct {
		path   string
		status int
		level  zapcore.Level
	}{
		{path: "/ok", status: http.StatusOK, level: zapcore.InfoLevel},
		{path: "/bad", status: http.StatusBadRequest, level: zapcore.WarnLevel},
		{path: "/boom", status: http.StatusBadGateway, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			app, logs := newObservedApp(t)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, tt.status, resp.StatusCode)

			entries := logs.All()
			require.Len(t, entries, 1)
			require.Equal(t, tt.level, entries[0].Level)
			require.Equal(t, "http", entries[0].LoggerName)

			fields := entries[0].ContextMap()
			require.Equal(t, tt.path, fields["path"])
			require.EqualValues(t, tt.status, fields["status"])
			require.NotEmpty(t, fields["request_id"])
		})
	}
}
