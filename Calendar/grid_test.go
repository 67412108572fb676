package Calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Hearth/Calendar"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGenerateGrid_MonthAlwaysSixWeeks(t *testing.T) {
	now := day(2024, time.June, 15)

	// Sweep two years of reference dates; the month grid must always be
	// 42 cells and never 35 or 49.
	for ref := day(2023, time.January, 1); ref.Before(day(2025, time.January, 1)); ref = ref.AddDate(0, 0, 17) {
		cells := Calendar.GenerateGrid(ref, Calendar.ViewMonth, now)
		require.Len(t, cells, 42, "reference %s", ref.Format("2006-01-02"))
		assert.Equal(t, time.Monday, cells[0].Date.Weekday(), "reference %s", ref.Format("2006-01-02"))

		// Consecutive dates, no gaps.
		for i := 1; i < len(cells); i++ {
			assert.Equal(t, cells[i-1].Date.AddDate(0, 0, 1), cells[i].Date)
		}
	}
}

func TestGenerateGrid_June2024Scenario(t *testing.T) {
	// June 1st 2024 is a Saturday, so the grid opens with five leading
	// May days and closes with the first week of July.
	cells := Calendar.GenerateGrid(day(2024, time.June, 10), Calendar.ViewMonth, day(2024, time.June, 10))
	require.Len(t, cells, 42)

	assert.Equal(t, day(2024, time.May, 27), cells[0].Date)
	assert.Equal(t, time.Monday, cells[0].Date.Weekday())
	assert.Equal(t, day(2024, time.July, 7), cells[41].Date)
	assert.Equal(t, time.Sunday, cells[41].Date.Weekday())

	assert.False(t, cells[0].IsCurrentPeriod)
	assert.False(t, cells[4].IsCurrentPeriod) // May 31
	assert.True(t, cells[5].IsCurrentPeriod)  // June 1
	assert.True(t, cells[34].IsCurrentPeriod) // June 30
	assert.False(t, cells[35].IsCurrentPeriod)
}

func TestGenerateGrid_WeekScenario(t *testing.T) {
	// Wednesday June 12 2024 belongs to the Monday June 10 week.
	cells := Calendar.GenerateGrid(day(2024, time.June, 12), Calendar.ViewWeek, day(2024, time.June, 12))
	require.Len(t, cells, 7)

	assert.Equal(t, day(2024, time.June, 10), cells[0].Date)
	assert.Equal(t, day(2024, time.June, 16), cells[6].Date)
	for _, c := range cells {
		assert.True(t, c.IsCurrentPeriod)
	}
}

func TestGenerateGrid_WeekSundayReference(t *testing.T) {
	// A Sunday reference is ISO day 7; the week still starts six days back.
	cells := Calendar.GenerateGrid(day(2024, time.June, 16), Calendar.ViewWeek, day(2024, time.June, 1))
	require.Len(t, cells, 7)
	assert.Equal(t, day(2024, time.June, 10), cells[0].Date)
	assert.Equal(t, day(2024, time.June, 16), cells[6].Date)
}

func TestGenerateGrid_WeekAlignment(t *testing.T) {
	now := day(2024, time.March, 1)
	for ref := day(2024, time.February, 1); ref.Before(day(2024, time.April, 1)); ref = ref.AddDate(0, 0, 1) {
		cells := Calendar.GenerateGrid(ref, Calendar.ViewWeek, now)
		require.Len(t, cells, 7)
		assert.Equal(t, time.Monday, cells[0].Date.Weekday())
		assert.Equal(t, time.Sunday, cells[6].Date.Weekday())

		found := false
		for _, c := range cells {
			if c.Date.Equal(ref) {
				found = true
			}
		}
		assert.True(t, found, "reference %s not inside its own week", ref.Format("2006-01-02"))
	}
}

func TestGenerateGrid_TodayFlag(t *testing.T) {
	// now carries a time-of-day; the flag must still land on the matching
	// calendar date.
	now := time.Date(2024, time.June, 12, 14, 30, 5, 0, time.UTC)
	cells := Calendar.GenerateGrid(day(2024, time.June, 1), Calendar.ViewMonth, now)

	todayCount := 0
	for _, c := range cells {
		if c.IsToday {
			todayCount++
			assert.Equal(t, day(2024, time.June, 12), c.Date)
		}
	}
	assert.Equal(t, 1, todayCount)
}

func TestGenerateGrid_TodayOutsideGrid(t *testing.T) {
	cells := Calendar.GenerateGrid(day(2024, time.June, 1), Calendar.ViewMonth, day(2031, time.January, 1))
	for _, c := range cells {
		assert.False(t, c.IsToday)
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-06-09", Calendar.DayKey(day(2024, time.June, 9)))
}
