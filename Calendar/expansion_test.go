package Calendar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"Hearth/Calendar"
)

func TestExpansionState_ZeroValueCollapsed(t *testing.T) {
	var s Calendar.ExpansionState

	key, ok := s.Expanded()
	assert.False(t, ok)
	assert.Empty(t, key)
	assert.False(t, s.IsExpanded(""))
}

func TestExpansionState_Toggle(t *testing.T) {
	var s Calendar.ExpansionState

	s.Toggle("2024-06-10")
	key, ok := s.Expanded()
	assert.True(t, ok)
	assert.Equal(t, "2024-06-10", key)
	assert.True(t, s.IsExpanded("2024-06-10"))

	// Toggling the expanded day collapses it.
	s.Toggle("2024-06-10")
	_, ok = s.Expanded()
	assert.False(t, ok)
}

func TestExpansionState_Exclusivity(t *testing.T) {
	var s Calendar.ExpansionState

	s.Toggle("2024-06-10")
	s.Toggle("2024-06-11")

	key, ok := s.Expanded()
	assert.True(t, ok)
	assert.Equal(t, "2024-06-11", key)
	assert.False(t, s.IsExpanded("2024-06-10"))
}

func TestExpansionState_Collapse(t *testing.T) {
	var s Calendar.ExpansionState
	s.Toggle("2024-06-10")
	s.Collapse()

	_, ok := s.Expanded()
	assert.False(t, ok)
}

func TestPreviewLimit(t *testing.T) {
	assert.Equal(t, 1, Calendar.PreviewLimit(Calendar.ViewMonth))
	assert.Equal(t, 3, Calendar.PreviewLimit(Calendar.ViewWeek))
}
