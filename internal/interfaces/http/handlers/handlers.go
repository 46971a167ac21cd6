package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/domain/questionnaire"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/ai"
)

// statusForError maps domain errors onto HTTP status codes. Rejected
// lifecycle transitions are conflicts, capability failures are upstream
// errors, everything unknown is a 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, questionnaire.ErrInvalidTransition):
		return fiber.StatusConflict
	case errors.Is(err, ai.ErrCapability), errors.Is(err, ai.ErrMalformedResult):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": message,
	})
}
