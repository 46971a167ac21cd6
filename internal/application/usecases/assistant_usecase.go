package usecases

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/supplyguard/supplyguard-api/internal/infrastructure/ai"
)

// AssistantUseCase holds the chat transcripts for the compliance assistant.
// One transcript per session id, kept in memory for the life of the process.
type AssistantUseCase struct {
	model ChatModel

	mu       sync.Mutex
	sessions map[string][]ai.ChatMessage
}

// NewAssistantUseCase creates a new AssistantUseCase.
func NewAssistantUseCase(model ChatModel) *AssistantUseCase {
	return &AssistantUseCase{model: model, sessions: make(map[string][]ai.ChatMessage)}
}

// Chat sends one user message on a session and returns the session id with
// the model's reply. An empty session id starts a new transcript. On a
// capability failure the transcript is left untouched so the caller can
// retry the same message.
func (u *AssistantUseCase) Chat(ctx context.Context, sessionID, message string) (string, string, error) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	u.mu.Lock()
	history := append([]ai.ChatMessage(nil), u.sessions[sessionID]...)
	u.mu.Unlock()

	reply, err := u.model.Chat(ctx, history, message)
	if err != nil {
		return sessionID, "", err
	}

	u.mu.Lock()
	u.sessions[sessionID] = append(u.sessions[sessionID],
		ai.ChatMessage{Role: "user", Text: message},
		ai.ChatMessage{Role: "model", Text: reply},
	)
	u.mu.Unlock()
	return sessionID, reply, nil
}

// Transcript returns a copy of the session history.
func (u *AssistantUseCase) Transcript(sessionID string) []ai.ChatMessage {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]ai.ChatMessage(nil), u.sessions[sessionID]...)
}
