package entities

// RiskDistribution counts suppliers per risk tier.
type RiskDistribution struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// ComplianceStats is the aggregate snapshot shown on the dashboard. It is
// maintained by external aggregation and seeded from fixtures; the API only
// consumes it and bumps the supplier total on ingestion.
type ComplianceStats struct {
	TotalSuppliers   int              `json:"total_suppliers"`
	CriticalAlerts   int              `json:"critical_alerts"`
	ComplianceScore  int              `json:"compliance_score"`
	RiskDistribution RiskDistribution `json:"risk_distribution"`
}
