// Package repositories holds the session-scoped stores backing the API.
//
// There is no database behind the dashboard: state lives in memory for the
// duration of the process, seeded from fixtures at startup. The stores are
// the single owner of that state; everything they return is a deep copy, so
// callers read and pass around immutable snapshots and every mutation flows
// back through an explicit store call.
package repositories

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/risk"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// SupplierRepository owns the supplier collection for this session.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers map[string]entities.Supplier
	// order preserves insertion sequence; newly ingested suppliers are
	// prepended so lists render newest-first.
	order []string
}

// NewSupplierRepository creates an empty supplier store.
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{suppliers: make(map[string]entities.Supplier)}
}

// Seed loads the fixture suppliers, replacing any existing state.
func (r *SupplierRepository) Seed(suppliers []entities.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = make(map[string]entities.Supplier, len(suppliers))
	r.order = make([]string, 0, len(suppliers))
	for _, s := range suppliers {
		s.RiskLevel = risk.Classify(s.RiskScore)
		r.suppliers[s.ID] = s.Clone()
		r.order = append(r.order, s.ID)
	}
}

// List returns suppliers in display order, optionally filtered by a
// case-insensitive substring match on name or industry.
func (r *SupplierRepository) List(filter string) []entities.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	filter = strings.ToLower(strings.TrimSpace(filter))
	out := make([]entities.Supplier, 0, len(r.order))
	for _, id := range r.order {
		s := r.suppliers[id]
		if filter != "" &&
			!strings.Contains(strings.ToLower(s.Name), filter) &&
			!strings.Contains(strings.ToLower(s.Industry), filter) {
			continue
		}
		out = append(out, s.Clone())
	}
	return out
}

// Get returns a snapshot of one supplier.
func (r *SupplierRepository) Get(id string) (entities.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[id]
	if !ok {
		return entities.Supplier{}, ErrNotFound
	}
	return s.Clone(), nil
}

// Insert adds a newly ingested supplier at the head of the display order.
func (r *SupplierRepository) Insert(s entities.Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.RiskLevel = risk.Classify(s.RiskScore)
	if _, exists := r.suppliers[s.ID]; !exists {
		r.order = append([]string{s.ID}, r.order...)
	}
	r.suppliers[s.ID] = s.Clone()
}

// Update replaces an existing supplier with a new snapshot. The risk level
// is recomputed so it can never drift from the score.
func (r *SupplierRepository) Update(s entities.Supplier) (entities.Supplier, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.suppliers[s.ID]; !ok {
		return entities.Supplier{}, ErrNotFound
	}
	s.RiskLevel = risk.Classify(s.RiskScore)
	r.suppliers[s.ID] = s.Clone()
	return s.Clone(), nil
}

// Count returns the number of suppliers currently held.
func (r *SupplierRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.suppliers)
}

// Distribution tallies the current suppliers per risk tier.
func (r *SupplierRepository) Distribution() entities.RiskDistribution {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var d entities.RiskDistribution
	for _, s := range r.suppliers {
		switch risk.Classify(s.RiskScore) {
		case entities.RiskCritical:
			d.Critical++
		case entities.RiskHigh:
			d.High++
		case entities.RiskMedium:
			d.Medium++
		default:
			d.Low++
		}
	}
	return d
}

// TopRisks returns the highest-scored suppliers above the given score,
// descending, capped at limit. Used by the executive report.
func (r *SupplierRepository) TopRisks(above, limit int) []entities.Supplier {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []entities.Supplier
	for _, s := range r.suppliers {
		if s.RiskScore > above {
			out = append(out, s.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RiskScore > out[j].RiskScore })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
