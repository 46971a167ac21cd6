package repositories

import (
	"sort"
	"sync"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

// AlertRepository owns the alert inbox for this session. Alerts are produced
// by external monitoring and seeded from fixtures; the API only flips their
// read/resolved state.
type AlertRepository struct {
	mu     sync.RWMutex
	alerts map[string]entities.Alert
}

// NewAlertRepository creates an empty alert store.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{alerts: make(map[string]entities.Alert)}
}

// Seed loads the fixture alerts, replacing any existing state.
func (r *AlertRepository) Seed(alerts []entities.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = make(map[string]entities.Alert, len(alerts))
	for _, a := range alerts {
		r.alerts[a.ID] = a
	}
}

// List returns all alerts, newest first.
func (r *AlertRepository) List() []entities.Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Get returns one alert.
func (r *AlertRepository) Get(id string) (entities.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.alerts[id]
	if !ok {
		return entities.Alert{}, ErrNotFound
	}
	return a, nil
}

// SetStatus moves one alert to the given inbox state.
func (r *AlertRepository) SetStatus(id string, status entities.AlertStatus) (entities.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.alerts[id]
	if !ok {
		return entities.Alert{}, ErrNotFound
	}
	a.Status = status
	r.alerts[id] = a
	return a, nil
}

// MarkAllRead flips every unread alert to READ and reports how many changed.
func (r *AlertRepository) MarkAllRead() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := 0
	for id, a := range r.alerts {
		if a.Status == entities.AlertUnread {
			a.Status = entities.AlertRead
			r.alerts[id] = a
			changed++
		}
	}
	return changed
}
