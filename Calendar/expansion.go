package Calendar

// Preview caps used by the rendering layer for collapsed cells. Bucket
// output is never truncated by these; they only decide how many items a
// caller shows before the "N more" indicator.
const (
	MonthPreviewLimit = 1
	WeekPreviewLimit  = 3
)

// PreviewLimit returns the collapsed-cell item cap for a view kind
func PreviewLimit(kind ViewKind) int {
	if kind == ViewWeek {
		return WeekPreviewLimit
	}
	return MonthPreviewLimit
}

// ExpansionState tracks which single day of a rendered grid, if any, is
// expanded. At most one day is expanded at a time; there is no timeout,
// only the manual toggle. The zero value is the collapsed state.
type ExpansionState struct {
	expandedDayKey string
}

// Toggle collapses the day if it is currently expanded, otherwise expands
// it. Expanding a day implicitly collapses whichever day was expanded
// before.
func (s *ExpansionState) Toggle(dayKey string) {
	if s.expandedDayKey == dayKey {
		s.expandedDayKey = ""
		return
	}
	s.expandedDayKey = dayKey
}

// Collapse resets the state so no day is expanded
func (s *ExpansionState) Collapse() {
	s.expandedDayKey = ""
}

// Expanded returns the expanded day key and whether any day is expanded
func (s *ExpansionState) Expanded() (string, bool) {
	return s.expandedDayKey, s.expandedDayKey != ""
}

// IsExpanded reports whether the given day key is the expanded one
func (s *ExpansionState) IsExpanded(dayKey string) bool {
	return dayKey != "" && s.expandedDayKey == dayKey
}
