package repositories

import (
	"sync"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

// StatsRepository holds the aggregate compliance snapshot. The figures come
// from external aggregation via fixtures; the API only reads them and bumps
// the supplier total when ingestion adds suppliers mid-session.
type StatsRepository struct {
	mu    sync.RWMutex
	stats entities.ComplianceStats
}

// NewStatsRepository creates a stats store with zeroed figures.
func NewStatsRepository() *StatsRepository {
	return &StatsRepository{}
}

// Seed replaces the snapshot.
func (r *StatsRepository) Seed(stats entities.ComplianceStats) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = stats
}

// Get returns the current snapshot.
func (r *StatsRepository) Get() entities.ComplianceStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats
}

// AddSuppliers bumps the supplier total by n.
func (r *StatsRepository) AddSuppliers(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats.TotalSuppliers += n
}
