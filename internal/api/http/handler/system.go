package handler

import "github.com/gofiber/fiber/v3"

type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

func (h *SystemHandler) Root(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Portfolio Contact API is running",
		"endpoints": fiber.Map{
			"contact":  "/api/contact",
			"health":   "/health",
			"messages": "/api/messages",
		},
	})
}

func (h *SystemHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "Server is running"})
}
