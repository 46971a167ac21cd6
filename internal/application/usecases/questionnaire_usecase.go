package usecases

import (
	"context"
	"fmt"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/questionnaire"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
	"github.com/supplyguard/supplyguard-api/internal/domain/risk"
)

// QuestionnaireUseCase drives the compliance-questionnaire lifecycle for a
// supplier. Each operation reads the current supplier snapshot, applies the
// state-machine transition, writes the result back and returns the fresh
// snapshot, so the caller always renders from stored truth.
type QuestionnaireUseCase struct {
	suppliers *repositories.SupplierRepository
	validator ResponseValidator
}

// NewQuestionnaireUseCase creates a new QuestionnaireUseCase.
func NewQuestionnaireUseCase(suppliers *repositories.SupplierRepository, validator ResponseValidator) *QuestionnaireUseCase {
	return &QuestionnaireUseCase{suppliers: suppliers, validator: validator}
}

// Send starts a questionnaire cycle for the supplier. The audit tier comes
// from an existing not-yet-sent questionnaire if one exists, otherwise from
// the supplier's risk score; the delivery language defaults to English when
// no override is given.
func (u *QuestionnaireUseCase) Send(supplierID string, lang entities.Language) (entities.Supplier, error) {
	s, err := u.suppliers.Get(supplierID)
	if err != nil {
		return entities.Supplier{}, err
	}

	tier := risk.QuestionnaireTier(s.RiskScore)
	if s.Questionnaire != nil && s.Questionnaire.Type != "" {
		tier = s.Questionnaire.Type
	}
	keys, err := questionnaire.TemplateKeys(tier)
	if err != nil {
		return entities.Supplier{}, fmt.Errorf("resolving %s template: %w", tier, err)
	}

	q, err := questionnaire.Send(s.Questionnaire, tier, lang, keys)
	if err != nil {
		return s, err
	}
	s.Questionnaire = q
	return u.suppliers.Update(s)
}

// Remind stamps a reminder on the supplier's delivered questionnaire.
func (u *QuestionnaireUseCase) Remind(supplierID string) (entities.Supplier, error) {
	s, err := u.suppliers.Get(supplierID)
	if err != nil {
		return entities.Supplier{}, err
	}
	q, err := questionnaire.Remind(s.Questionnaire)
	if err != nil {
		return s, err
	}
	s.Questionnaire = q
	return u.suppliers.Update(s)
}

// ReceiveResponse records the supplier's responses. The external validation
// runs first; if it fails, nothing is written and the supplier stays exactly
// as it was, so the caller may retry the whole call.
func (u *QuestionnaireUseCase) ReceiveResponse(ctx context.Context, supplierID string, responses map[string]string) (entities.Supplier, error) {
	s, err := u.suppliers.Get(supplierID)
	if err != nil {
		return entities.Supplier{}, err
	}
	if !s.Questionnaire.AwaitingResponse() {
		return s, fmt.Errorf("%w: responses require a delivered, unanswered questionnaire", questionnaire.ErrInvalidTransition)
	}

	verdict, err := u.validator.ValidateResponses(ctx, responses)
	if err != nil {
		return s, err
	}

	q, err := questionnaire.Complete(s.Questionnaire, responses, verdict.Score, verdict.Feedback)
	if err != nil {
		return s, err
	}
	s.Questionnaire = q
	return u.suppliers.Update(s)
}

// Preview returns the question template for a tier so the UI can render it
// before anything is sent.
func (u *QuestionnaireUseCase) Preview(tier entities.QuestionnaireType) ([]questionnaire.Question, error) {
	return questionnaire.Template(tier)
}
