package api

import "github.com/gofiber/fiber/v2"

const internalErrorDetail = "An internal server error occurred."

func detailError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"detail": message})
}
