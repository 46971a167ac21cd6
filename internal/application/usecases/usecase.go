package usecases

import (
	"context"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/infrastructure/ai"
)

// The use cases depend on the AI capability through these narrow interfaces
// so tests can substitute deterministic fakes. *ai.Client satisfies all of
// them.

// ResponseValidator scores questionnaire responses.
type ResponseValidator interface {
	ValidateResponses(ctx context.Context, responses map[string]string) (ai.ValidationResult, error)
}

// NewsAnalyst produces risk insight for a supplier.
type NewsAnalyst interface {
	AnalyzeNews(ctx context.Context, supplierName string) (string, error)
	DeepRiskAssessment(ctx context.Context, supplier entities.Supplier) (string, error)
}

// ListParser maps raw tabular text onto supplier rows.
type ListParser interface {
	ParseTabularList(ctx context.Context, rawText string) ([]ai.SupplierRow, error)
}

// DocumentExtractor reads business information out of an uploaded document.
type DocumentExtractor interface {
	ExtractFromDocument(ctx context.Context, data []byte, mimeType string) (ai.ExtractedSupplier, error)
}

// SpeechGenerator renders text as audio.
type SpeechGenerator interface {
	GenerateAlertSpeech(ctx context.Context, text string) ([]byte, error)
}

// ChatModel continues an assistant conversation.
type ChatModel interface {
	Chat(ctx context.Context, history []ai.ChatMessage, message string) (string, error)
}
