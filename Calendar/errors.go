package Calendar

import (
	"fmt"
	"time"
)

// MalformedDateError reports a raw record whose date field could not be
// parsed. The whole normalization batch fails; nothing is silently dropped.
type MalformedDateError struct {
	RecordID string
	Field    string
	Value    string
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("record %s: malformed %s %q", e.RecordID, e.Field, e.Value)
}

// InvalidIntervalError reports a booking whose start date falls after its
// end date. Raised at normalization time, never deferred to bucketing.
type InvalidIntervalError struct {
	RecordID string
	Start    time.Time
	End      time.Time
}

func (e *InvalidIntervalError) Error() string {
	return fmt.Sprintf("record %s: start date %s after end date %s",
		e.RecordID, e.Start.Format(dayLayout), e.End.Format(dayLayout))
}
