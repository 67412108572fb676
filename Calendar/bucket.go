package Calendar

import "time"

// sameDay is calendar-date equality, not timestamp equality
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// covers reports whether the booking's closed [start, end] interval
// contains the day. Both endpoints are inclusive: a one-night stay with
// identical start and end matches exactly that day, and a longer stay
// matches the check-in and check-out days as well as everything between.
func covers(b BookingInterval, day time.Time) bool {
	d := truncateDay(day)
	return !d.Before(truncateDay(b.StartDate)) && !d.After(truncateDay(b.EndDate))
}

// Bucket assigns the given tasks and bookings to the grid cells they
// belong to and sums the matched task amounts per day. Every input cell
// yields exactly one CalendarDay in the same position, even when nothing
// matches, so callers can rely on positional correspondence with the grid.
func Bucket(cells []GridCell, tasks []ScheduledTask, bookings []BookingInterval) []CalendarDay {
	days := make([]CalendarDay, 0, len(cells))
	for _, cell := range cells {
		day := CalendarDay{
			Date:            cell.Date,
			IsCurrentPeriod: cell.IsCurrentPeriod,
			IsToday:         cell.IsToday,
			Tasks:           []ScheduledTask{},
			Bookings:        []BookingInterval{},
		}
		for _, t := range tasks {
			if sameDay(t.Date, cell.Date) {
				day.Tasks = append(day.Tasks, t)
				day.TotalAmount += t.Amount
			}
		}
		for _, b := range bookings {
			if covers(b, cell.Date) {
				day.Bookings = append(day.Bookings, b)
			}
		}
		days = append(days, day)
	}
	return days
}
