package usecases

import (
	"context"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
)

// speechInputLimit caps how much alert text is sent to the TTS capability.
const speechInputLimit = 500

// AlertUseCase implements the alert inbox operations.
type AlertUseCase struct {
	alerts  *repositories.AlertRepository
	speaker SpeechGenerator
}

// NewAlertUseCase creates a new AlertUseCase.
func NewAlertUseCase(alerts *repositories.AlertRepository, speaker SpeechGenerator) *AlertUseCase {
	return &AlertUseCase{alerts: alerts, speaker: speaker}
}

// GetAlerts lists all alerts, newest first.
func (u *AlertUseCase) GetAlerts() []entities.Alert {
	return u.alerts.List()
}

// MarkRead flips one alert to READ.
func (u *AlertUseCase) MarkRead(id string) (entities.Alert, error) {
	return u.alerts.SetStatus(id, entities.AlertRead)
}

// Resolve flips one alert to RESOLVED.
func (u *AlertUseCase) Resolve(id string) (entities.Alert, error) {
	return u.alerts.SetStatus(id, entities.AlertResolved)
}

// MarkAllRead flips every unread alert to READ and reports how many changed.
func (u *AlertUseCase) MarkAllRead() int {
	return u.alerts.MarkAllRead()
}

// SpeakAlert renders one alert as audio using its title and message.
func (u *AlertUseCase) SpeakAlert(ctx context.Context, id string) ([]byte, error) {
	a, err := u.alerts.Get(id)
	if err != nil {
		return nil, err
	}
	return u.Speech(ctx, a.Title+". "+a.Message)
}

// Speech renders an alert summary as audio. Input beyond the limit is
// truncated before it reaches the capability.
func (u *AlertUseCase) Speech(ctx context.Context, text string) ([]byte, error) {
	if len(text) > speechInputLimit {
		text = text[:speechInputLimit]
	}
	return u.speaker.GenerateAlertSpeech(ctx, text)
}
