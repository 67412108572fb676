package Calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Hearth/Calendar"
)

func task(id string, d time.Time, amount float64) Calendar.ScheduledTask {
	return Calendar.ScheduledTask{ID: id, Date: d, Amount: amount, OwnerID: "o1", PropertyID: "p1"}
}

func booking(id string, start, end time.Time) Calendar.BookingInterval {
	return Calendar.BookingInterval{ID: id, StartDate: start, EndDate: end, Source: "manual", OwnerID: "o1", PropertyID: "p1"}
}

func gridFor(ref time.Time) []Calendar.GridCell {
	return Calendar.GenerateGrid(ref, Calendar.ViewMonth, ref)
}

func TestBucket_Totality(t *testing.T) {
	cells := gridFor(day(2024, time.June, 1))
	days := Calendar.Bucket(cells, nil, nil)

	require.Len(t, days, len(cells))
	for i, d := range days {
		assert.Equal(t, cells[i].Date, d.Date, "position %d", i)
		assert.NotNil(t, d.Tasks)
		assert.NotNil(t, d.Bookings)
		assert.Empty(t, d.Tasks)
		assert.Empty(t, d.Bookings)
		assert.Zero(t, d.TotalAmount)
	}
}

func TestBucket_IntervalInclusivity(t *testing.T) {
	cells := gridFor(day(2024, time.June, 1))
	b := booking("b1", day(2024, time.June, 10), day(2024, time.June, 12))
	days := Calendar.Bucket(cells, nil, []Calendar.BookingInterval{b})

	matched := map[string]bool{}
	for _, d := range days {
		if len(d.Bookings) > 0 {
			matched[Calendar.DayKey(d.Date)] = true
		}
	}
	assert.Equal(t, map[string]bool{
		"2024-06-10": true,
		"2024-06-11": true,
		"2024-06-12": true,
	}, matched)
}

func TestBucket_OneNightStay(t *testing.T) {
	cells := gridFor(day(2024, time.June, 1))
	b := booking("b1", day(2024, time.June, 5), day(2024, time.June, 5))
	days := Calendar.Bucket(cells, nil, []Calendar.BookingInterval{b})

	count := 0
	for _, d := range days {
		if len(d.Bookings) > 0 {
			count++
			assert.Equal(t, day(2024, time.June, 5), d.Date)
		}
	}
	assert.Equal(t, 1, count)
}

func TestBucket_PointMatchExactness(t *testing.T) {
	cells := gridFor(day(2024, time.June, 1))
	tk := task("t1", day(2024, time.June, 15), 80)
	days := Calendar.Bucket(cells, []Calendar.ScheduledTask{tk}, nil)

	for _, d := range days {
		if Calendar.DayKey(d.Date) == "2024-06-15" {
			require.Len(t, d.Tasks, 1)
			assert.Equal(t, "t1", d.Tasks[0].ID)
		} else {
			assert.Empty(t, d.Tasks)
		}
	}
}

func TestBucket_TaskTimeOfDayIgnored(t *testing.T) {
	cells := gridFor(day(2024, time.June, 1))
	tk := task("t1", time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC), 10)
	days := Calendar.Bucket(cells, []Calendar.ScheduledTask{tk}, nil)

	found := false
	for _, d := range days {
		if len(d.Tasks) > 0 {
			found = true
			assert.Equal(t, "2024-06-15", Calendar.DayKey(d.Date))
		}
	}
	assert.True(t, found)
}

func TestBucket_Aggregation(t *testing.T) {
	cells := gridFor(day(2024, time.June, 1))
	tasks := []Calendar.ScheduledTask{
		task("t1", day(2024, time.June, 15), 100),
		task("t2", day(2024, time.June, 15), 250),
		task("t3", day(2024, time.June, 20), 40),
	}
	// Bookings never contribute to the per-day total.
	bookings := []Calendar.BookingInterval{
		booking("b1", day(2024, time.June, 14), day(2024, time.June, 16)),
	}
	days := Calendar.Bucket(cells, tasks, bookings)

	for _, d := range days {
		switch Calendar.DayKey(d.Date) {
		case "2024-06-15":
			assert.Equal(t, 350.0, d.TotalAmount)
		case "2024-06-20":
			assert.Equal(t, 40.0, d.TotalAmount)
		default:
			assert.Zero(t, d.TotalAmount)
		}
	}
}

func TestBucket_SpanAcrossGridBoundary(t *testing.T) {
	// A booking reaching outside the visible grid only matches the cells
	// the grid actually contains.
	cells := Calendar.GenerateGrid(day(2024, time.June, 12), Calendar.ViewWeek, day(2024, time.June, 1))
	b := booking("b1", day(2024, time.June, 1), day(2024, time.June, 11))
	days := Calendar.Bucket(cells, nil, []Calendar.BookingInterval{b})

	require.Len(t, days, 7)
	assert.Len(t, days[0].Bookings, 1) // June 10
	assert.Len(t, days[1].Bookings, 1) // June 11
	for _, d := range days[2:] {
		assert.Empty(t, d.Bookings)
	}
}

func TestBucket_PreservesInputOrder(t *testing.T) {
	cells := gridFor(day(2024, time.June, 1))
	tasks := []Calendar.ScheduledTask{
		task("t2", day(2024, time.June, 3), 1),
		task("t1", day(2024, time.June, 3), 2),
	}
	days := Calendar.Bucket(cells, tasks, nil)

	for _, d := range days {
		if len(d.Tasks) == 2 {
			assert.Equal(t, "t2", d.Tasks[0].ID)
			assert.Equal(t, "t1", d.Tasks[1].ID)
			return
		}
	}
	t.Fatal("expected a day with both tasks")
}
