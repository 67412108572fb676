package Calendar

import "time"

// monthGridSize is always 6 full weeks. Months whose last days would fit
// in 5 weeks still get the following month's first week as trailing
// overflow; this matches how the dashboards have always rendered.
const monthGridSize = 42

const weekGridSize = 7

// DayKey returns the string key used to address a single grid day,
// e.g. for expansion toggling
func DayKey(t time.Time) string {
	return t.Format(dayLayout)
}

// isoWeekday maps time.Weekday to ISO numbering (Monday=1 .. Sunday=7)
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// GenerateGrid produces the ordered date cells for a month or week view
// around the reference date. Month grids are exactly 42 consecutive days
// starting on the Monday of the week containing the 1st; week grids are
// the Monday-Sunday week containing the reference. now is only used to
// flag the cell matching the caller's midnight-truncated today.
func GenerateGrid(reference time.Time, kind ViewKind, now time.Time) []GridCell {
	today := truncateDay(now)

	switch kind {
	case ViewMonth:
		first := time.Date(reference.Year(), reference.Month(), 1, 0, 0, 0, 0, reference.Location())
		start := first.AddDate(0, 0, -(isoWeekday(first) - 1))
		cells := make([]GridCell, 0, monthGridSize)
		for i := 0; i < monthGridSize; i++ {
			d := start.AddDate(0, 0, i)
			cells = append(cells, GridCell{
				Date:            d,
				IsCurrentPeriod: d.Month() == reference.Month(),
				IsToday:         sameDay(d, today),
			})
		}
		return cells
	case ViewWeek:
		ref := truncateDay(reference)
		start := ref.AddDate(0, 0, -(isoWeekday(ref) - 1))
		cells := make([]GridCell, 0, weekGridSize)
		for i := 0; i < weekGridSize; i++ {
			d := start.AddDate(0, 0, i)
			cells = append(cells, GridCell{
				Date:            d,
				IsCurrentPeriod: true,
				IsToday:         sameDay(d, today),
			})
		}
		return cells
	}
	return nil
}
