// Package questionnaire implements the compliance-questionnaire lifecycle.
//
// One cycle runs NOT_SENT -> SENT -> COMPLETED. PENDING and OVERDUE are
// accepted wherever SENT is, so a future escalation job can move delivered
// questionnaires into them without touching this package. Every transition
// takes the current value and returns a new one; the input is never mutated,
// so callers can treat questionnaires as immutable snapshots.
package questionnaire

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

// ErrInvalidTransition reports an operation invoked against a questionnaire
// whose status does not satisfy the operation's precondition. It signals a
// stale UI or caller bug; the correct handling is a no-op plus a re-render
// from current state, not a user-facing failure.
var ErrInvalidTransition = fmt.Errorf("invalid questionnaire transition")

// Send creates the questionnaire for a new cycle and marks it delivered.
// prev must be nil or still NOT_SENT; sending again after delivery is
// rejected so a completed questionnaire can never be regressed to SENT and
// silently lose its responses.
func Send(prev *entities.Questionnaire, tier entities.QuestionnaireType, lang entities.Language, keys []string) (*entities.Questionnaire, error) {
	if prev != nil && prev.Status != entities.QuestionnaireNotSent {
		return prev, fmt.Errorf("%w: send requires status NOT_SENT, have %s", ErrInvalidTransition, prev.Status)
	}
	if lang == "" {
		lang = entities.LanguageEN
	}
	now := timeNow()
	q := &entities.Questionnaire{
		ID:           uuid.NewString(),
		Type:         tier,
		Status:       entities.QuestionnaireSent,
		Language:     lang,
		QuestionKeys: append([]string(nil), keys...),
		SentAt:       &now,
	}
	return q, nil
}

// Remind stamps a reminder on a delivered questionnaire. The status is left
// untouched; only LastReminderAt moves, so immediate repeat reminders simply
// advance the timestamp.
func Remind(prev *entities.Questionnaire) (*entities.Questionnaire, error) {
	if !prev.AwaitingResponse() {
		return prev, fmt.Errorf("%w: remind requires a delivered, unanswered questionnaire", ErrInvalidTransition)
	}
	q := prev.Clone()
	now := timeNow()
	q.LastReminderAt = &now
	return &q, nil
}

// Complete records the supplier's responses together with the validation
// verdict and closes the cycle. Callers run the external validation first and
// only call Complete on success, so a failed validation leaves the
// questionnaire exactly as it was.
func Complete(prev *entities.Questionnaire, responses map[string]string, score int, feedback string) (*entities.Questionnaire, error) {
	if !prev.AwaitingResponse() {
		return prev, fmt.Errorf("%w: responses require a delivered, unanswered questionnaire", ErrInvalidTransition)
	}
	q := prev.Clone()
	now := timeNow()
	q.Status = entities.QuestionnaireCompleted
	q.CompletedAt = &now
	q.Responses = make(map[string]string, len(responses))
	for k, v := range responses {
		q.Responses[k] = v
	}
	q.AIScore = &score
	q.AIFeedback = feedback
	return &q, nil
}
