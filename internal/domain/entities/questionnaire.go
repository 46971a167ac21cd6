package entities

import (
	"time"
)

// QuestionnaireStatus tracks one compliance-audit cycle for a supplier.
//
// SENT, PENDING and OVERDUE all mean "delivered, awaiting a response".
// PENDING and OVERDUE are never produced by the transitions implemented
// here (a time-based escalation job would own them) but every operation
// accepts them as valid current states.
type QuestionnaireStatus string

const (
	QuestionnaireNotSent   QuestionnaireStatus = "NOT_SENT"
	QuestionnaireSent      QuestionnaireStatus = "SENT"
	QuestionnairePending   QuestionnaireStatus = "PENDING"
	QuestionnaireCompleted QuestionnaireStatus = "COMPLETED"
	QuestionnaireOverdue   QuestionnaireStatus = "OVERDUE"
)

// QuestionnaireType is the audit depth selected from the supplier's risk score.
type QuestionnaireType string

const (
	TierComprehensive QuestionnaireType = "COMPREHENSIVE"
	TierStandard      QuestionnaireType = "STANDARD"
	TierBasic         QuestionnaireType = "BASIC"
)

// Language is the delivery language of a questionnaire.
type Language string

const (
	LanguageEN Language = "EN"
	LanguageDE Language = "DE"
	LanguageCN Language = "CN"
	LanguageES Language = "ES"
	LanguageFR Language = "FR"
)

// Questionnaire is one send-through-completion audit cycle.
//
// The optional fields are only meaningful for certain statuses: SentAt is set
// from SENT onwards, LastReminderAt only while awaiting a response, and
// CompletedAt/Responses/AIScore/AIFeedback only once COMPLETED. The lifecycle
// transitions in internal/domain/questionnaire are the only code that writes
// these fields, which is what keeps the pairing honest.
type Questionnaire struct {
	ID             string              `json:"id"`
	Type           QuestionnaireType   `json:"type"`
	Status         QuestionnaireStatus `json:"status"`
	Language       Language            `json:"language"`
	QuestionKeys   []string            `json:"question_keys,omitempty"`
	SentAt         *time.Time          `json:"sent_at,omitempty"`
	CompletedAt    *time.Time          `json:"completed_at,omitempty"`
	LastReminderAt *time.Time          `json:"last_reminder_at,omitempty"`
	Responses      map[string]string   `json:"responses,omitempty"`
	AIScore        *int                `json:"ai_score,omitempty"`
	AIFeedback     string              `json:"ai_feedback,omitempty"`
}

// AwaitingResponse reports whether the questionnaire has been delivered and
// is still waiting on the supplier.
func (q *Questionnaire) AwaitingResponse() bool {
	if q == nil {
		return false
	}
	switch q.Status {
	case QuestionnaireSent, QuestionnairePending, QuestionnaireOverdue:
		return true
	}
	return false
}

// Clone returns a deep copy of the questionnaire.
func (q Questionnaire) Clone() Questionnaire {
	out := q
	if q.QuestionKeys != nil {
		out.QuestionKeys = append([]string(nil), q.QuestionKeys...)
	}
	if q.SentAt != nil {
		t := *q.SentAt
		out.SentAt = &t
	}
	if q.CompletedAt != nil {
		t := *q.CompletedAt
		out.CompletedAt = &t
	}
	if q.LastReminderAt != nil {
		t := *q.LastReminderAt
		out.LastReminderAt = &t
	}
	if q.Responses != nil {
		out.Responses = make(map[string]string, len(q.Responses))
		for k, v := range q.Responses {
			out.Responses[k] = v
		}
	}
	if q.AIScore != nil {
		v := *q.AIScore
		out.AIScore = &v
	}
	return out
}
