package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/jaydeeprathod/portfolio-backend/internal/service/contact"
	"github.com/jaydeeprathod/portfolio-backend/internal/store"
)

const msgMissingFields = "Please fill in all required fields."

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

type submitContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req submitContactRequest
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, msgMissingFields)
	}

	res, err := h.svc.Submit(c.Context(), contact.SubmitRequest{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, contact.ErrMissingFields) {
			return badRequest(c, msgMissingFields)
		}
		var de *contact.DeliveryError
		if errors.As(err, &de) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": de.Message,
				"code":  de.Code,
			})
		}
		return internalError(c, "Failed to send message. Please try again later.")
	}

	if res.Note != "" {
		return c.JSON(fiber.Map{"success": true, "note": res.Note})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ContactHandler) Messages(c fiber.Ctx) error {
	msgs, err := h.svc.Messages(c.Context())
	if err != nil {
		return internalError(c, "Failed to retrieve messages")
	}
	if msgs == nil {
		msgs = []store.Submission{}
	}
	return c.JSON(fiber.Map{"messages": msgs})
}
