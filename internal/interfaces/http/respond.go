package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/dto"
)

// internalError writes the generic 500 envelope. The underlying error
// text is exposed only in development.
func internalError(c *fiber.Ctx, env string, err error) error {
	detail := "Something went wrong"
	if env == "development" && err != nil {
		detail = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{
		Success: false,
		Message: "Internal server error",
		Error:   detail,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
		Success: false,
		Message: message,
	})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.Response{
		Success: false,
		Message: message,
	})
}
