package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
)

// ReportHandler serves generated compliance reports.
type ReportHandler struct {
	reportUseCase *usecases.ReportUseCase
}

func NewReportHandler(reportUseCase *usecases.ReportUseCase) *ReportHandler {
	return &ReportHandler{reportUseCase}
}

func (h *ReportHandler) GetExecutiveReport(c *fiber.Ctx) error {
	return c.JSON(h.reportUseCase.Generate())
}
