package Calendar

import "sort"

// Project returns the flat list-view shape: tasks sorted ascending by
// date and bookings ascending by start date. Sorting is stable, so
// records sharing a date keep their input order.
func Project(tasks []ScheduledTask, bookings []BookingInterval) ListProjection {
	sortedTasks := make([]ScheduledTask, len(tasks))
	copy(sortedTasks, tasks)
	sort.SliceStable(sortedTasks, func(i, j int) bool {
		return sortedTasks[i].Date.Before(sortedTasks[j].Date)
	})

	sortedBookings := make([]BookingInterval, len(bookings))
	copy(sortedBookings, bookings)
	sort.SliceStable(sortedBookings, func(i, j int) bool {
		return sortedBookings[i].StartDate.Before(sortedBookings[j].StartDate)
	})

	return ListProjection{Tasks: sortedTasks, Bookings: sortedBookings}
}
