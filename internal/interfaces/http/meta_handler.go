package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck is the liveness probe, served in the uniform envelope.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success":   true,
		"message":   "Server is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// APIIndex lists the available endpoints at the root path.
func APIIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Company Management API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"health": "GET /health",
			"auth": fiber.Map{
				"register":       "POST /auth/register",
				"login":          "POST /auth/login",
				"profile":        "GET /auth/profile (requires token)",
				"updateProfile":  "PUT /auth/profile (requires token)",
				"changePassword": "PUT /auth/change-password (requires token)",
				"delete":         "DELETE /auth/:id (requires token)",
			},
			"companies": fiber.Map{
				"getAll":     "GET /company",
				"getById":    "GET /company/:id",
				"create":     "POST /company",
				"update":     "PUT /company/:id",
				"delete":     "DELETE /company/:id",
				"bulkDelete": "POST /company/bulk-delete",
			},
			"items": fiber.Map{
				"getAll":       "GET /item",
				"getById":      "GET /item/:id",
				"create":       "POST /item",
				"update":       "PUT /item/:id",
				"delete":       "DELETE /item/:id",
				"getByHsnCode": "GET /item/hsn/:hsnCode",
				"bulkDelete":   "POST /item/bulk-delete",
			},
			"sales": fiber.Map{
				"getAll":  "GET /sales",
				"getById": "GET /sales/:id",
				"create":  "POST /sales",
				"update":  "PUT /sales/:id",
				"delete":  "DELETE /sales/:id",
			},
		},
	})
}
