package Models

import (
	"gorm.io/gorm"
)

type Owner struct {
	gorm.Model
	Name       string     `json:"name" gorm:"not null;uniqueIndex"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Notes      string     `json:"notes"`
	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:OwnerID"`
}
