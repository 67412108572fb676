package Calendar

import "time"

// ViewKind selects the grid shape to generate
type ViewKind string

const (
	ViewMonth ViewKind = "month"
	ViewWeek  ViewKind = "week"
)

// ScheduledTask is a point-in-time maintenance task, already normalized
// to a calendar date (time-of-day discarded)
type ScheduledTask struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	Amount     float64   `json:"amount"`
	OwnerID    string    `json:"owner_id"`
	PropertyID string    `json:"property_id"`
	Paid       bool      `json:"paid"`
}

// BookingInterval is a stay with inclusive start and end calendar dates
type BookingInterval struct {
	ID         string    `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Source     string    `json:"source"`
	OwnerID    string    `json:"owner_id"`
	PropertyID string    `json:"property_id"`
}

// RawTask is the shape handed over by the persistence layer. Dates arrive
// as strings because the store keeps calendar dates as YYYY-MM-DD columns.
type RawTask struct {
	ID         string  `json:"id"`
	Date       string  `json:"date"`
	Amount     float64 `json:"amount"`
	OwnerID    string  `json:"owner_id"`
	PropertyID string  `json:"property_id"`
	Paid       bool    `json:"paid"`
}

// RawBooking is the raw booking record shape from the persistence layer
type RawBooking struct {
	ID         string `json:"id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Source     string `json:"source"`
	OwnerID    string `json:"owner_id"`
	PropertyID string `json:"property_id"`
}

// FilterSelection is the active multi-select restriction. An empty id
// slice means no restriction on that dimension.
type FilterSelection struct {
	OwnerIDs    []string `json:"owner_ids"`
	PropertyIDs []string `json:"property_ids"`
}

// GridCell is one slot of a generated month or week grid
type GridCell struct {
	Date            time.Time `json:"date"`
	IsCurrentPeriod bool      `json:"is_current_period"`
	IsToday         bool      `json:"is_today"`
}

// CalendarDay is a grid cell with the entities bucketed into it
type CalendarDay struct {
	Date            time.Time         `json:"date"`
	IsCurrentPeriod bool              `json:"is_current_period"`
	IsToday         bool              `json:"is_today"`
	Tasks           []ScheduledTask   `json:"tasks"`
	Bookings        []BookingInterval `json:"bookings"`
	TotalAmount     float64           `json:"total_amount"`
}

// ListProjection is the flat alternative to day buckets, for table views
type ListProjection struct {
	Tasks    []ScheduledTask   `json:"tasks"`
	Bookings []BookingInterval `json:"bookings"`
}
