package Models

import (
	"gorm.io/gorm"
)

// MaintenanceTask is a point-in-time scheduled job against a property.
// Date is kept as a YYYY-MM-DD string column so date-window queries can
// use plain lexicographic BETWEEN.
type MaintenanceTask struct {
	gorm.Model
	Title      string  `json:"title" gorm:"not null"`
	Date       string  `json:"date" gorm:"not null;index"`
	Amount     float64 `json:"amount"`
	Paid       bool    `json:"paid"`
	OwnerID    uint    `json:"owner_id" gorm:"not null;index"`
	PropertyID uint    `json:"property_id" gorm:"not null;index"`
	Notes      string  `json:"notes"`
}
