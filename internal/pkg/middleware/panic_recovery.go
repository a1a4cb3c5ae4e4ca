package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/piresc/poputchik/internal/pkg/logger"
	"github.com/piresc/poputchik/internal/utils"
)

// PanicRecoveryMiddleware turns a panicking handler into a 500 response
// and logs the panic with its stack trace
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	req := c.Request()
	requestID := GetRequestID(c)

	zapLogger.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("user_agent", req.UserAgent()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return
	}
	if err := utils.InternalServerErrorResponse(c, "An unexpected error occurred while processing your request"); err != nil {
		c.String(http.StatusInternalServerError, "Internal Server Error")
	}
}
