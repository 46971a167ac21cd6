package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
)

// AlertHandler exposes the alert inbox.
type AlertHandler struct {
	alertUseCase *usecases.AlertUseCase
}

func NewAlertHandler(alertUseCase *usecases.AlertUseCase) *AlertHandler {
	return &AlertHandler{alertUseCase}
}

func (h *AlertHandler) GetAlerts(c *fiber.Ctx) error {
	alerts := h.alertUseCase.GetAlerts()

	return c.JSON(fiber.Map{
		"data": alerts,
		"meta": fiber.Map{
			"total": len(alerts),
		},
	})
}

func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	alert, err := h.alertUseCase.MarkRead(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(alert)
}

func (h *AlertHandler) Resolve(c *fiber.Ctx) error {
	alert, err := h.alertUseCase.Resolve(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(alert)
}

func (h *AlertHandler) MarkAllRead(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"updated": h.alertUseCase.MarkAllRead(),
	})
}

// Speech returns the alert narrated as PCM audio for the briefing player.
func (h *AlertHandler) Speech(c *fiber.Ctx) error {
	audio, err := h.alertUseCase.SpeakAlert(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "audio/L16")
	return c.Send(audio)
}
