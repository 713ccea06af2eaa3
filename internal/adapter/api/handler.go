package api

import (
	"errors"

	"portfolio-gateway/internal/domain/entity"
	"portfolio-gateway/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type GenerateHandler struct {
	orchestrator *usecase.Orchestrator
}

func NewGenerateHandler(orch *usecase.Orchestrator) *GenerateHandler {
	return &GenerateHandler{orchestrator: orch}
}

func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req entity.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		// A missing or unparsable body is the same as a missing prompt.
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No prompt provided"})
	}

	envelope, err := h.orchestrator.Generate(c.Context(), req)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyPrompt) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No prompt provided"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "Server error",
			"detail": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(envelope)
}

// ErrorHandler catches anything the handlers did not: recovered panics
// and framework-level failures all surface as the generic 500 envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":  "Server error",
		"detail": err.Error(),
	})
}
