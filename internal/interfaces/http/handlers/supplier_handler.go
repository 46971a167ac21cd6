package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
)

// SupplierHandler handles supplier portfolio requests.
type SupplierHandler struct {
	supplierUseCase *usecases.SupplierUseCase
}

func NewSupplierHandler(supplierUseCase *usecases.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{supplierUseCase}
}

func (h *SupplierHandler) GetSuppliers(c *fiber.Ctx) error {
	search := c.Query("search", "")

	suppliers := h.supplierUseCase.GetSuppliers(search)

	return c.JSON(fiber.Map{
		"data": suppliers,
		"meta": fiber.Map{
			"total":  len(suppliers),
			"search": search,
		},
	})
}

func (h *SupplierHandler) GetSupplier(c *fiber.Ctx) error {
	supplier, err := h.supplierUseCase.GetSupplier(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(supplier)
}

func (h *SupplierHandler) BlockSupplier(c *fiber.Ctx) error {
	supplier, err := h.supplierUseCase.BlockSupplier(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(supplier)
}

// AnalyzeNews runs a grounded news screening for one supplier. Results are
// cached for a short window, so repeated calls are cheap.
func (h *SupplierHandler) AnalyzeNews(c *fiber.Ctx) error {
	analysis, err := h.supplierUseCase.AnalyzeNews(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"analysis": analysis,
	})
}

func (h *SupplierHandler) DeepAssessment(c *fiber.Ctx) error {
	assessment, err := h.supplierUseCase.DeepAssessment(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"assessment": assessment,
	})
}
