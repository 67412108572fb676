package Calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Hearth/Calendar"
)

func makeDataset() ([]Calendar.ScheduledTask, []Calendar.BookingInterval) {
	d := day(2024, time.June, 1)
	tasks := []Calendar.ScheduledTask{
		{ID: "t1", Date: d, OwnerID: "o1", PropertyID: "p1"},
		{ID: "t2", Date: d, OwnerID: "o1", PropertyID: "p2"},
		{ID: "t3", Date: d, OwnerID: "o2", PropertyID: "p3"},
	}
	bookings := []Calendar.BookingInterval{
		{ID: "b1", StartDate: d, EndDate: d, OwnerID: "o1", PropertyID: "p1"},
		{ID: "b2", StartDate: d, EndDate: d, OwnerID: "o2", PropertyID: "p3"},
	}
	return tasks, bookings
}

func taskIDs(tasks []Calendar.ScheduledTask) []string {
	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func bookingIDs(bookings []Calendar.BookingInterval) []string {
	ids := make([]string, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestApplyFilter_EmptySelectionIsIdentity(t *testing.T) {
	tasks, bookings := makeDataset()
	ft, fb := Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{})

	assert.Equal(t, taskIDs(tasks), taskIDs(ft))
	assert.Equal(t, bookingIDs(bookings), bookingIDs(fb))
}

func TestApplyFilter_OwnerOnly(t *testing.T) {
	tasks, bookings := makeDataset()
	ft, fb := Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{OwnerIDs: []string{"o1"}})

	assert.Equal(t, []string{"t1", "t2"}, taskIDs(ft))
	assert.Equal(t, []string{"b1"}, bookingIDs(fb))
}

func TestApplyFilter_PropertyOnly(t *testing.T) {
	tasks, bookings := makeDataset()
	ft, fb := Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{PropertyIDs: []string{"p3"}})

	assert.Equal(t, []string{"t3"}, taskIDs(ft))
	assert.Equal(t, []string{"b2"}, bookingIDs(fb))
}

func TestApplyFilter_BothDimensionsIntersect(t *testing.T) {
	tasks, bookings := makeDataset()
	// Owner and property constraints are applied independently: the
	// property set is not narrowed to the owner's properties.
	ft, fb := Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{
		OwnerIDs:    []string{"o1"},
		PropertyIDs: []string{"p1", "p3"},
	})

	assert.Equal(t, []string{"t1"}, taskIDs(ft))
	assert.Equal(t, []string{"b1"}, bookingIDs(fb))
}

func TestApplyFilter_NoMatches(t *testing.T) {
	tasks, bookings := makeDataset()
	ft, fb := Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{OwnerIDs: []string{"nobody"}})

	assert.Empty(t, ft)
	assert.Empty(t, fb)
}

func TestApplyFilter_ComposedCallsEqualIntersection(t *testing.T) {
	tasks, bookings := makeDataset()

	// Filtering twice with single-dimension selections equals one call
	// carrying both constraints, since constraints only narrow.
	ft1, fb1 := Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{OwnerIDs: []string{"o1"}})
	ft1, fb1 = Calendar.ApplyFilter(ft1, fb1, Calendar.FilterSelection{PropertyIDs: []string{"p1"}})

	ft2, fb2 := Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{
		OwnerIDs:    []string{"o1"},
		PropertyIDs: []string{"p1"},
	})

	require.Equal(t, taskIDs(ft2), taskIDs(ft1))
	require.Equal(t, bookingIDs(fb2), bookingIDs(fb1))
}

func TestApplyFilter_DoesNotMutateInput(t *testing.T) {
	tasks, bookings := makeDataset()
	Calendar.ApplyFilter(tasks, bookings, Calendar.FilterSelection{OwnerIDs: []string{"o2"}})

	assert.Equal(t, []string{"t1", "t2", "t3"}, taskIDs(tasks))
	assert.Equal(t, []string{"b1", "b2"}, bookingIDs(bookings))
}
