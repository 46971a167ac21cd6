// Package risk maps numeric risk scores to display tiers, audit depths and
// baseline scores for newly ingested suppliers. Everything here is pure and
// total: out-of-range scores land in the nearest extreme bucket, never in an
// error.
package risk

import (
	"github.com/supplyguard/supplyguard-api/internal/domain/entities"
)

// Classify returns the display risk tier for a score. Thresholds are
// inclusive toward the higher tier.
func Classify(score int) entities.RiskLevel {
	switch {
	case score >= 80:
		return entities.RiskCritical
	case score >= 60:
		return entities.RiskHigh
	case score >= 30:
		return entities.RiskMedium
	default:
		return entities.RiskLow
	}
}

// QuestionnaireTier selects the audit depth for a score.
//
// Note the boundary at 60: Classify treats 60 as HIGH, but a score of exactly
// 60 still gets a STANDARD questionnaire. That asymmetry matches the shipped
// product behavior and is relied on by existing tier assignments, so both
// functions keep their own threshold.
func QuestionnaireTier(score int) entities.QuestionnaireType {
	switch {
	case score > 60:
		return entities.TierComprehensive
	case score >= 30:
		return entities.TierStandard
	default:
		return entities.TierBasic
	}
}

// Label returns the human display label for a risk level.
func Label(level entities.RiskLevel) string {
	switch level {
	case entities.RiskCritical:
		return "Critical"
	case entities.RiskHigh:
		return "High"
	case entities.RiskMedium:
		return "Medium"
	default:
		return "Low"
	}
}

// Baseline risk per industry category, used when a supplier enters the system
// without any screening history.
var industryBaseline = map[string]int{
	"Textiles":    70,
	"Electronics": 45,
	"Automotive":  40,
	"Chemicals":   60,
	"Logistics":   30,
	"Software":    15,
}

// Baseline risk per ISO country code.
var countryBaseline = map[string]int{
	"DE": 5, "CH": 5, "NO": 5,
	"US": 10, "FR": 10, "JP": 10,
	"CN": 55, "IN": 50, "VN": 45,
	"BD": 75, "MM": 85, "KP": 95,
}

const defaultBaseline = 25

// BaselineScore derives a deterministic initial risk score for a supplier
// from its industry and country. Unknown industries and countries fall back
// to a moderate default rather than zero, so an unrecognized supplier is not
// silently treated as low risk.
func BaselineScore(industry, country string) int {
	ind, ok := industryBaseline[industry]
	if !ok {
		ind = defaultBaseline
	}
	ctr, ok := countryBaseline[country]
	if !ok {
		ctr = defaultBaseline
	}
	return (ind + ctr) / 2
}
