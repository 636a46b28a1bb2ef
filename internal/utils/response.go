package utils

import (
	"github.com/gofiber/fiber/v2"
)

// Response bodies reproduce the Node.js service's envelope exactly
// (mensagem / codigo / erro), so existing clients keep working.

// MessageResponse sends a success envelope with just a message.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"mensagem": message,
	})
}

// ErrorResponse sends an error envelope with a machine-readable code and the
// underlying error detail.
func ErrorResponse(c *fiber.Ctx, status int, message, code string, err error) error {
	body := fiber.Map{
		"mensagem": message,
		"codigo":   code,
	}
	if err != nil {
		body["erro"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

// ValidationErrorResponse sends the 400 envelope used by every validation
// failure: a fixed message plus the list of human-readable problems.
func ValidationErrorResponse(c *fiber.Ctx, errs []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"mensagem": "Erro de validação dos dados.",
		"codigo":   "VALIDATION_ERROR",
		"erro":     errs,
	})
}

// NotFoundResponse sends the 404 envelope.
func NotFoundResponse(c *fiber.Ctx, message, code string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"mensagem": message,
		"codigo":   code,
	})
}

// ErrorResponseStruct defines the schema for error responses (swagger).
type ErrorResponseStruct struct {
	Message string      `json:"mensagem"`
	Code    string      `json:"codigo,omitempty"`
	Err     interface{} `json:"erro,omitempty"`
}

// MessageResponseStruct defines the schema for plain success responses (swagger).
type MessageResponseStruct struct {
	Message string `json:"mensagem"`
}
