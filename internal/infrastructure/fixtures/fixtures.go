// Package fixtures seeds the session stores with the demo portfolio. It
// stands in for the external screening and monitoring systems that would
// normally feed the dashboard.
package fixtures

import (
	"time"

	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Suppliers returns the seeded supplier portfolio.
func Suppliers() []entities.Supplier {
	return []entities.Supplier{
		{
			ID:             "s1",
			Name:           "Acme Textiles Ltd",
			LegalName:      "Acme Textile Manufacturing Bangladesh Ltd",
			Country:        "BD",
			Industry:       "Textiles",
			RiskScore:      78,
			SanctionsHit:   false,
			Status:         entities.SupplierWatchlist,
			LastScreenedAt: ts("2024-12-26T10:00:00Z"),
			News: []entities.NewsArticle{
				{
					ID:          "n1",
					Title:       "Labor violations reported in Dhaka textile hub",
					URL:         "#",
					Source:      "Reuters",
					PublishedAt: ts("2024-12-25T08:30:00Z"),
					Summary:     "Multiple workers reported unpaid overtime and unsafe working conditions at the Dhaka facility.",
					IsRelevant:  true,
					Severity:    9,
					Risks:       []string{"Labor Violations", "Human Rights"},
				},
			},
		},
		{
			ID:             "s2",
			Name:           "TechParts Shenzhen",
			Country:        "CN",
			Industry:       "Electronics",
			RiskScore:      55,
			SanctionsHit:   false,
			Status:         entities.SupplierActive,
			LastScreenedAt: ts("2024-12-27T12:00:00Z"),
			News:           []entities.NewsArticle{},
		},
		{
			ID:             "s3",
			Name:           "Global LogiCorp",
			Country:        "MM",
			Industry:       "Logistics",
			RiskScore:      92,
			SanctionsHit:   true,
			Status:         entities.SupplierBlocked,
			LastScreenedAt: ts("2024-12-27T09:00:00Z"),
			News: []entities.NewsArticle{
				{
					ID:          "n2",
					Title:       "New sanctions list includes Myanmar logistics firms",
					URL:         "#",
					Source:      "EU Commission",
					PublishedAt: ts("2024-12-20T14:00:00Z"),
					Summary:     "Strategic logistics entities linked to the military regime have been added to the consolidated sanctions list.",
					IsRelevant:  true,
					Severity:    10,
					Risks:       []string{"Sanctions", "Political Risk"},
				},
			},
		},
	}
}

// Alerts returns the seeded alert inbox.
func Alerts() []entities.Alert {
	return []entities.Alert{
		{
			ID:           "a1",
			SupplierID:   "s1",
			SupplierName: "Acme Textiles Ltd",
			Type:         entities.AlertHighRiskNews,
			Severity:     9,
			Title:        "Critical Risk: Labor Violations",
			Message:      "Reported unpaid overtime and safety hazards in Dhaka factory.",
			Status:       entities.AlertUnread,
			CreatedAt:    ts("2024-12-25T09:00:00Z"),
		},
		{
			ID:           "a2",
			SupplierID:   "s3",
			SupplierName: "Global LogiCorp",
			Type:         entities.AlertSanctions,
			Severity:     10,
			Title:        "Sanctions Hit Detected",
			Message:      "Supplier matched with EU Consolidated Sanctions List update.",
			Status:       entities.AlertUnread,
			CreatedAt:    ts("2024-12-27T09:05:00Z"),
		},
	}
}

// Stats returns the seeded aggregate snapshot.
func Stats() entities.ComplianceStats {
	return entities.ComplianceStats{
		TotalSuppliers:  200,
		CriticalAlerts:  15,
		ComplianceScore: 78,
		RiskDistribution: entities.RiskDistribution{
			Critical: 13,
			High:     35,
			Medium:   70,
			Low:      82,
		},
	}
}
