package raildata

import (
	"fmt"
	"strconv"
	"strings"
)

// NoTimeSentinel is how the schedule provider serialises an absent
// arrival (origin) or departure (terminus) time.
const NoTimeSentinel = "--"

// HaltNotApplicable marks stops where a halt duration is undefined,
// such as the origin and the terminus.
const HaltNotApplicable = -1

// RawStop is a single station record exactly as the schedule provider
// returns it. All fields are strings; the normaliser is responsible for
// parsing and validating them.
type RawStop struct {
	StationCode   string `json:"stationCode"`
	StationName   string `json:"stationName"`
	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`
	Distance      string `json:"distance"`
	DayCount      string `json:"dayCount"`
	Seq           string `json:"seq"`
}

// StationStop is one normalised stop on a train's route.
type StationStop struct {
	Code string `groups:"basic" json:"code"`
	Name string `groups:"basic" json:"name"`

	// Sequence is the 1-based position within the schedule. It is
	// assigned from input order and is the only stop identifier used
	// downstream - station codes can repeat on real routes.
	Sequence int `groups:"basic" json:"sequence"`

	DistanceFromOrigin float64 `groups:"basic" json:"distance_from_origin"`

	Arrival   *ClockTime `groups:"basic" json:"arrival,omitempty"`
	Departure *ClockTime `groups:"basic" json:"departure,omitempty"`

	// DayOffset is the journey day this stop falls on, origin day = 1.
	DayOffset int `groups:"basic" json:"day_offset"`

	// HaltMinutes is the dwell time at this stop, or HaltNotApplicable
	// when either time is missing.
	HaltMinutes int `groups:"basic" json:"halt_minutes"`
}

// ClockTime is a time-zone-naive time of day at minute precision.
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseClockTime parses "HH:MM" or "HH:MM:SS" provider times, truncating
// anything below minute precision. The whole value must parse - a valid
// prefix followed by garbage is rejected. The provider's no-time sentinel
// and an empty string return nil rather than midnight.
func ParseClockTime(value string) (*ClockTime, error) {
	value = strings.TrimSpace(value)
	if value == "" || value == NoTimeSentinel {
		return nil, nil
	}

	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return nil, fmt.Errorf("cannot parse time %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil, fmt.Errorf("cannot parse time %q", value)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("cannot parse time %q", value)
	}
	if len(parts) == 3 {
		if _, err := strconv.Atoi(parts[2]); err != nil {
			return nil, fmt.Errorf("cannot parse time %q", value)
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return nil, fmt.Errorf("time %q out of range", value)
	}

	return &ClockTime{Hour: hour, Minute: minute}, nil
}

// MinuteOfDay returns the time as minutes after midnight.
func (c ClockTime) MinuteOfDay() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
