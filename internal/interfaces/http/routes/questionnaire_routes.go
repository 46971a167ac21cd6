package routes

import (
	"github.com/supplyguard/supplyguard-api/internal/interfaces/http/handlers"

	"github.com/gofiber/fiber/v2"
)

func RegisterQuestionnaireRoutes(router fiber.Router, questionnaireHandler *handlers.QuestionnaireHandler) {
	// Lifecycle operations live under the supplier they belong to.
	router.Post("/suppliers/:id/questionnaire/send", questionnaireHandler.Send)
	router.Post("/suppliers/:id/questionnaire/remind", questionnaireHandler.Remind)
	router.Post("/suppliers/:id/questionnaire/response", questionnaireHandler.ReceiveResponse)

	// Template previews are tier-scoped, not supplier-scoped.
	router.Get("/questionnaires/templates/:tier", questionnaireHandler.PreviewTemplate)
}
