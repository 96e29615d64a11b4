package raildata

import (
	"fmt"
	"time"
)

// CalendarDate is a date with no time component. Journey dates are
// calendar dates - a train "runs on" a day, not at an instant.
type CalendarDate struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

const calendarDateFormat = "2006-01-02"

// DateOf truncates an instant to its calendar date.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseCalendarDate parses a YYYY-MM-DD date string.
func ParseCalendarDate(value string) (CalendarDate, error) {
	t, err := time.Parse(calendarDateFormat, value)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("cannot parse date %q: expected YYYY-MM-DD", value)
	}

	return DateOf(t), nil
}

// DaysSince returns the number of whole calendar days from other to d,
// positive when d is later. Both dates are anchored to UTC midnight so
// the subtraction never sees daylight-saving offsets.
func (d CalendarDate) DaysSince(other CalendarDate) int {
	a := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year, other.Month, other.Day, 0, 0, 0, 0, time.UTC)

	return int(a.Sub(b).Hours() / 24)
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
