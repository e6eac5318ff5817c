package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Envelope is the wire shape of every API response. Result carries the
// payload on success; Error and ErrorCode are set on failure.
type Envelope struct {
	Status    string      `json:"status"`
	Error     string      `json:"error"`
	ErrorCode string      `json:"error_code"`
	Result    interface{} `json:"result"`
}

// PagedResult is the result payload for server-paginated listings.
type PagedResult struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
}

func OK(c *fiber.Ctx, status int, result interface{}) error {
	return c.Status(status).JSON(Envelope{
		Status: "ok",
		Result: result,
	})
}

func Fail(c *fiber.Ctx, status int, errorCode, message string) error {
	return c.Status(status).JSON(Envelope{
		Status:    "error",
		Error:     message,
		ErrorCode: errorCode,
	})
}
