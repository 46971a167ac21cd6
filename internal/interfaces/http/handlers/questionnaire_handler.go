package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

// QuestionnaireHandler drives the questionnaire lifecycle for a supplier.
type QuestionnaireHandler struct {
	questionnaireUseCase *usecases.QuestionnaireUseCase
}

func NewQuestionnaireHandler(questionnaireUseCase *usecases.QuestionnaireUseCase) *QuestionnaireHandler {
	return &QuestionnaireHandler{questionnaireUseCase}
}

type sendQuestionnaireRequest struct {
	Language entities.Language `json:"language"`
}

func (h *QuestionnaireHandler) Send(c *fiber.Ctx) error {
	var req sendQuestionnaireRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	supplier, err := h.questionnaireUseCase.Send(c.Params("id"), req.Language)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(supplier)
}

func (h *QuestionnaireHandler) Remind(c *fiber.Ctx) error {
	supplier, err := h.questionnaireUseCase.Remind(c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(supplier)
}

type questionnaireResponseRequest struct {
	Responses map[string]string `json:"responses"`
}

// ReceiveResponse ingests the supplier's answers and runs AI validation.
// The questionnaire only completes when validation succeeds.
func (h *QuestionnaireHandler) ReceiveResponse(c *fiber.Ctx) error {
	var req questionnaireResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(req.Responses) == 0 {
		return badRequest(c, "'responses' must not be empty")
	}

	supplier, err := h.questionnaireUseCase.ReceiveResponse(c.UserContext(), c.Params("id"), req.Responses)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(supplier)
}

// PreviewTemplate returns the question set a tier would send, without
// touching any supplier.
func (h *QuestionnaireHandler) PreviewTemplate(c *fiber.Ctx) error {
	tier := entities.QuestionnaireType(strings.ToUpper(c.Params("tier")))

	questions, err := h.questionnaireUseCase.Preview(tier)
	if err != nil {
		return badRequest(c, err.Error())
	}
	return c.JSON(fiber.Map{
		"tier":      tier,
		"questions": questions,
	})
}
