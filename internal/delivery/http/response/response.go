// Package response holds the flat JSON bodies of the public API. The
// shapes predate this service (the front end was built against them), so
// they stay as-is: no envelope, just the documented fields.
package response

import "github.com/labstack/echo/v4"

// Body is the minimal response carrying only a user-facing message.
type Body struct {
	Message string `json:"message"`
}

// Message writes a {"message": ...} body with the given status.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{Message: message})
}

// Error writes an error body. Same shape as Message; the split exists so
// call sites read correctly.
func Error(c echo.Context, statusCode int, message string) error {
	return Message(c, statusCode, message)
}
