package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

func withDefault(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, withDefault(errorMessage, "Bad request"))
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, withDefault(errorMessage, "Resource not found"))
}

// ConflictResponse sends a 409 Conflict response
func ConflictResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusConflict, withDefault(errorMessage, "Conflict"))
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, withDefault(errorMessage, "Internal server error"))
}

// BadGatewayResponse sends a 502 Bad Gateway response for upstream failures
func BadGatewayResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadGateway, withDefault(errorMessage, "Upstream service error"))
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, withDefault(errorMessage, "Service unavailable"))
}
