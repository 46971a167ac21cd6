package usecases

import (
	"math"
	"time"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
	"github.com/supplyguard/supplyguard-api/internal/domain/repositories"
)

// Top-risk selection for the executive report: suppliers scoring above the
// threshold, highest first.
const (
	topRiskThreshold = 60
	topRiskLimit     = 3
)

// ExecutiveReport is the management summary rendered on the reports page.
type ExecutiveReport struct {
	GeneratedAt    time.Time                `json:"generated_at"`
	Stats          entities.ComplianceStats `json:"stats"`
	CompliantCount int                      `json:"compliant_count"`
	CompliantShare int                      `json:"compliant_share"` // percent
	CriticalCount  int                      `json:"critical_count"`
	Recommendation string                   `json:"recommendation"`
	TopRisks       []entities.Supplier      `json:"top_risks"`
}

// ReportUseCase builds the executive report.
type ReportUseCase struct {
	stats     *repositories.StatsRepository
	suppliers *repositories.SupplierRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(stats *repositories.StatsRepository, suppliers *repositories.SupplierRepository) *ReportUseCase {
	return &ReportUseCase{stats: stats, suppliers: suppliers}
}

// Generate assembles the report from the current aggregate snapshot and the
// live supplier portfolio.
func (u *ReportUseCase) Generate() ExecutiveReport {
	stats := u.stats.Get()

	compliant := stats.TotalSuppliers - stats.RiskDistribution.Critical
	share := 0
	if stats.TotalSuppliers > 0 {
		share = int(math.Round(float64(compliant) / float64(stats.TotalSuppliers) * 100))
	}

	return ExecutiveReport{
		GeneratedAt:    time.Now().UTC(),
		Stats:          stats,
		CompliantCount: compliant,
		CompliantShare: share,
		CriticalCount:  stats.RiskDistribution.Critical,
		Recommendation: "Initiate secondary audits for all Critical tier entities.",
		TopRisks:       u.suppliers.TopRisks(topRiskThreshold, topRiskLimit),
	}
}
