package serviceutils

import (
	"github.com/labstack/echo/v4"

	"github.com/locvowork/employee_roster/internal/logger"
)

// APIResponse is the JSON envelope returned by every endpoint.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func ResponseSuccess(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ResponseError writes a failure envelope. Server errors are logged; client errors are not.
func ResponseError(c echo.Context, statusCode int, message string, err error) error {
	resp := APIResponse{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
		if statusCode >= 500 {
			logger.ErrorLog(c.Request().Context(), "%s: %v", message, err)
		}
	}
	return c.JSON(statusCode, resp)
}
