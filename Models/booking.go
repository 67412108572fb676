package Models

import (
	"gorm.io/gorm"
)

// Booking channel tags, presentation-only
const (
	SourcePlatformA = "platformA"
	SourcePlatformB = "platformB"
	SourceManual    = "manual"
	SourceOther     = "other"
)

// Booking is a guest stay with inclusive check-in and check-out calendar
// dates, stored as YYYY-MM-DD strings like MaintenanceTask.Date.
type Booking struct {
	gorm.Model
	GuestName  string `json:"guest_name"`
	CheckIn    string `json:"check_in" gorm:"not null;index"`
	CheckOut   string `json:"check_out" gorm:"not null;index"`
	Source     string `json:"source" gorm:"default:other"`
	OwnerID    uint   `json:"owner_id" gorm:"not null;index"`
	PropertyID uint   `json:"property_id" gorm:"not null;index"`
	Notes      string `json:"notes"`
}
