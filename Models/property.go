package Models

import (
	"gorm.io/gorm"
)

type Property struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	OwnerID uint   `json:"owner_id" gorm:"not null;index"`
	Address string `json:"address"`

	// Rental terms shown on the property page, not used by the calendar
	RentalType   string  `json:"rental_type"` // short_term | long_term
	NightlyRate  float64 `json:"nightly_rate"`
	Bedrooms     int     `json:"bedrooms"`
	MaxOccupancy int     `json:"max_occupancy"`

	Tasks    []MaintenanceTask `json:"tasks,omitempty" gorm:"foreignKey:PropertyID"`
	Bookings []Booking         `json:"bookings,omitempty" gorm:"foreignKey:PropertyID"`
}
