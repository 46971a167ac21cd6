package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/supplyguard/supplyguard-api/internal/application/usecases"
)

// AssistantHandler exposes the compliance chat assistant.
type AssistantHandler struct {
	assistantUseCase *usecases.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecases.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{assistantUseCase}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// Chat appends a message to a conversation and returns the assistant reply.
// An empty session_id starts a new conversation.
func (h *AssistantHandler) Chat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return badRequest(c, "'message' is required")
	}

	sessionID, reply, err := h.assistantUseCase.Chat(c.UserContext(), req.SessionID, req.Message)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"reply":      reply,
	})
}
