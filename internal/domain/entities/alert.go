package entities

import (
	"time"
)

// AlertType categorizes what triggered an alert.
type AlertType string

const (
	AlertSanctions     AlertType = "SANCTIONS"
	AlertHighRiskNews  AlertType = "HIGH_RISK_NEWS"
	AlertScoreIncrease AlertType = "SCORE_INCREASE"
	AlertNewSupplier   AlertType = "NEW_SUPPLIER"
)

// AlertStatus is the inbox state of an alert.
type AlertStatus string

const (
	AlertUnread   AlertStatus = "UNREAD"
	AlertRead     AlertStatus = "READ"
	AlertResolved AlertStatus = "RESOLVED"
)

// Alert is a notification produced by external monitoring. The supplier name
// is denormalized so the inbox can render without a supplier lookup.
type Alert struct {
	ID           string      `json:"id"`
	SupplierID   string      `json:"supplier_id"`
	SupplierName string      `json:"supplier_name"`
	Type         AlertType   `json:"type"`
	Severity     int         `json:"severity"`
	Title        string      `json:"title"`
	Message      string      `json:"message"`
	Status       AlertStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}
