package usecases

import (
	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
)

// recentAlertCount is how many alerts the dashboard sidebar shows.
const recentAlertCount = 4

// DashboardOverview is the consolidated payload for the dashboard page.
// Stats carry the externally aggregated figures; LiveDistribution reflects
// the suppliers actually loaded in this session.
type DashboardOverview struct {
	Stats            entities.ComplianceStats  `json:"stats"`
	LiveDistribution entities.RiskDistribution `json:"live_distribution"`
	RecentAlerts     []entities.Alert          `json:"recent_alerts"`
}

// DashboardUseCase assembles the dashboard overview.
type DashboardUseCase struct {
	stats     *repositories.StatsRepository
	suppliers *repositories.SupplierRepository
	alerts    *repositories.AlertRepository
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(stats *repositories.StatsRepository, suppliers *repositories.SupplierRepository, alerts *repositories.AlertRepository) *DashboardUseCase {
	return &DashboardUseCase{stats: stats, suppliers: suppliers, alerts: alerts}
}

// GetOverview returns the current dashboard snapshot.
func (u *DashboardUseCase) GetOverview() DashboardOverview {
	recent := u.alerts.List()
	if len(recent) > recentAlertCount {
		recent = recent[:recentAlertCount]
	}
	return DashboardOverview{
		Stats:            u.stats.Get(),
		LiveDistribution: u.suppliers.Distribution(),
		RecentAlerts:     recent,
	}
}
