package entities

import (
	"time"
)

// SupplierStatus tracks whether a supplier may currently be traded with.
type SupplierStatus string

const (
	SupplierActive    SupplierStatus = "ACTIVE"
	SupplierWatchlist SupplierStatus = "WATCHLIST"
	SupplierBlocked   SupplierStatus = "BLOCKED"
)

// RiskLevel is the display tier derived from a supplier's numeric risk score.
type RiskLevel string

const (
	RiskCritical RiskLevel = "CRITICAL"
	RiskHigh     RiskLevel = "HIGH"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskLow      RiskLevel = "LOW"
)

// Supplier represents one external organization under compliance monitoring.
type Supplier struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	LegalName      string         `json:"legal_name,omitempty"`
	Country        string         `json:"country"`
	City           string         `json:"city,omitempty"`
	Industry       string         `json:"industry"`
	Website        string         `json:"website,omitempty"`
	RiskScore      int            `json:"risk_score"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	SanctionsHit   bool           `json:"sanctions_hit"`
	Status         SupplierStatus `json:"status"`
	LastScreenedAt time.Time      `json:"last_screened_at"`
	News           []NewsArticle  `json:"news"`
	Questionnaire  *Questionnaire `json:"questionnaire,omitempty"`
}

// NewsArticle is one adverse-media item associated with a supplier.
type NewsArticle struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Summary     string    `json:"summary,omitempty"`
	IsRelevant  bool      `json:"is_relevant"`
	Severity    int       `json:"severity"`
	Risks       []string  `json:"risks"`
}

// Clone returns a deep copy of the supplier. The stores hand out clones so
// callers hold immutable snapshots, never aliases into shared state.
func (s Supplier) Clone() Supplier {
	out := s
	if s.News != nil {
		out.News = make([]NewsArticle, len(s.News))
		for i, n := range s.News {
			out.News[i] = n
			if n.Risks != nil {
				out.News[i].Risks = append([]string(nil), n.Risks...)
			}
		}
	}
	if s.Questionnaire != nil {
		q := s.Questionnaire.Clone()
		out.Questionnaire = &q
	}
	return out
}
