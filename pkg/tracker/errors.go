package tracker

import "fmt"

// InvalidScheduleError reports a schedule that cannot be trusted for
// position estimation. A partial or corrupt schedule is never silently
// patched - the whole lookup fails instead.
type InvalidScheduleError struct {
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("invalid schedule: %s", e.Reason)
}

func invalidSchedule(format string, args ...any) error {
	return &InvalidScheduleError{Reason: fmt.Sprintf(format, args...)}
}
