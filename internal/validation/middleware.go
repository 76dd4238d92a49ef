package validation

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/dto"
)

// Body returns a Fiber middleware that validates the JSON request body
// against the schema before the handler runs. On failure it responds with
// the uniform validation envelope and the single offending field.
func Body(schema *Schema) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := map[string]any{}
		if len(c.Body()) > 0 {
			if err := json.Unmarshal(c.Body(), &raw); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
					Success: false,
					Message: "Invalid request body",
				})
			}
		}
		if _, ferr := schema.Validate(raw); ferr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
				Success: false,
				Message: "Validation error",
				Error:   ferr,
			})
		}
		return c.Next()
	}
}
