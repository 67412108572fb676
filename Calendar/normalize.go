package Calendar

import "time"

const dayLayout = "2006-01-02"

// dateLayouts are the accepted raw date formats, tried in order
var dateLayouts = []string{dayLayout, time.RFC3339}

func parseDay(recordID, field, value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, &MalformedDateError{RecordID: recordID, Field: field, Value: value}
}

// truncateDay drops the time-of-day, keeping the calendar date in the
// value's own location
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// NormalizeTasks converts raw task records into canonical ScheduledTasks.
// A single malformed date fails the whole batch so the caller can decide
// whether to drop, fix or re-query the offending record.
func NormalizeTasks(raw []RawTask) ([]ScheduledTask, error) {
	tasks := make([]ScheduledTask, 0, len(raw))
	for _, r := range raw {
		date, err := parseDay(r.ID, "date", r.Date)
		if err != nil {
			return nil, err
		}
		amount := r.Amount
		if amount < 0 {
			amount = 0
		}
		tasks = append(tasks, ScheduledTask{
			ID:         r.ID,
			Date:       date,
			Amount:     amount,
			OwnerID:    r.OwnerID,
			PropertyID: r.PropertyID,
			Paid:       r.Paid,
		})
	}
	return tasks, nil
}

// NormalizeBookings converts raw booking records into canonical
// BookingIntervals. Start after end fails the batch eagerly.
func NormalizeBookings(raw []RawBooking) ([]BookingInterval, error) {
	bookings := make([]BookingInterval, 0, len(raw))
	for _, r := range raw {
		start, err := parseDay(r.ID, "start_date", r.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseDay(r.ID, "end_date", r.EndDate)
		if err != nil {
			return nil, err
		}
		if start.After(end) {
			return nil, &InvalidIntervalError{RecordID: r.ID, Start: start, End: end}
		}
		source := r.Source
		if source == "" {
			source = "other"
		}
		bookings = append(bookings, BookingInterval{
			ID:         r.ID,
			StartDate:  start,
			EndDate:    end,
			Source:     source,
			OwnerID:    r.OwnerID,
			PropertyID: r.PropertyID,
		})
	}
	return bookings, nil
}
