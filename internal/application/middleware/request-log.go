package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"weather-etl/pkg/log"
	"weather-etl/pkg/msg"
)

// SetupRequestLogger registers the request id and request logging middleware.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasSuffix(path, "/health") || strings.Contains(path, "/swagger/")
		},
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error == nil {
				log.Info(msg.GetMessage("app.req-end", v.Method, v.URI, v.Status), fields...)
			} else {
				log.Error(msg.GetMessage("app.req-fail", v.Method, v.URI, v.Status, v.Error.Error()), append(fields, zap.Error(v.Error))...)
			}
			return nil
		},
	}))
}
