package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	ctxpkg "github.com/piresc/poputchik/internal/pkg/context"
)

// HeaderRequestID carries the request ID in both directions
const HeaderRequestID = echo.HeaderXRequestID

const requestIDKey = "request_id"

// RequestIDMiddleware reuses the caller's X-Request-ID or generates one.
// The ID is echoed back on the response and stored in the request context
// so outgoing API calls carry it too.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set(requestIDKey, requestID)
			c.Response().Header().Set(HeaderRequestID, requestID)
			c.SetRequest(c.Request().WithContext(ctxpkg.WithRequestID(c.Request().Context(), requestID)))

			return next(c)
		}
	}
}

// GetRequestID returns the ID assigned by RequestIDMiddleware
func GetRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(HeaderRequestID); requestID != "" {
		return requestID
	}
	if requestID, ok := c.Get(requestIDKey).(string); ok {
		return requestID
	}
	return c.Request().Header.Get(HeaderRequestID)
}
