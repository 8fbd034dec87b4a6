package utils

import "github.com/labstack/echo/v4"

// Envelope 所有 API 回應的共用外框
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  any    `json:"result,omitempty"`
}

// OK responds with a success envelope.
func OK(c echo.Context, message string, result any) error {
	return c.JSON(200, Envelope{Success: true, Message: message, Result: result})
}

// Fail responds with a failure envelope and the given HTTP status.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}
