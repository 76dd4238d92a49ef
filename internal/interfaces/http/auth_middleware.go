package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/viewlist/viewlist-api/internal/application/dto"
	"github.com/viewlist/viewlist-api/pkg/jwt"
)

// LocalUserID is the Fiber locals key for the authenticated user id.
const LocalUserID = "user_id"

// HeaderAuthToken is the request header carrying the token, presented
// verbatim (no Bearer prefix).
const HeaderAuthToken = "authtoken"

// AuthMiddleware checks the authtoken header. Missing header -> 401,
// invalid or expired token -> 403, valid -> user id in locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(HeaderAuthToken)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Response{
				Success: false,
				Message: "Access token required",
			})
		}
		userID, err := jwt.Parse(jwtSecret, token)
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(dto.Response{
				Success: false,
				Message: "Invalid or expired token",
			})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID returns the authenticated user id from the context.
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
