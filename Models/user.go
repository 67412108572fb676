package Models

import (
	"time"
)

// Permission levels: 1 viewer, 2 manager, 3 accountant, 4 admin
type User struct {
	Id         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name"`
	Email      string    `json:"email" gorm:"uniqueIndex"`
	Password   []byte    `json:"-"`
	Permission int       `json:"permission"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
