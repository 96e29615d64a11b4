package tracker

import (
	"math"
	"time"

	"github.com/railtrace/railtrace/pkg/raildata"
)

// Position locates a train along its schedule as a single number over
// [-1, N] for a schedule of N stops:
//
//	-1        journey not started
//	N         journey complete
//	i         departed stop i, not yet arrived at stop i+1
//	i - 0.5   arrived at stop i, not yet departed (dwelling)
type Position float64

// PositionNotStarted is returned both for journeys dated in the future
// and for journeys dated today whose origin departure has not passed.
const PositionNotStarted Position = -1

// PositionCompleted is the completed-journey position for a schedule of
// n stops.
func PositionCompleted(n int) Position {
	return Position(n)
}

// Dwelling reports whether the train is stopped at a station.
func (p Position) Dwelling() bool {
	return p != Position(math.Trunc(float64(p)))
}

// StopIndex is the zero-based index of the stop the position refers to:
// the dwelt-at stop for half positions, the departed stop otherwise.
func (p Position) StopIndex() int {
	return int(math.Floor(float64(p) + 0.5))
}

// StationStatus classifies one stop of an n-stop schedule relative to
// the position, for callers rendering per-stop progress.
type StationStatus string

const (
	StationStatusPassed    StationStatus = "Passed"
	StationStatusAtStation StationStatus = "AtStation"
	StationStatusNext      StationStatus = "Next"
	StationStatusUpcoming  StationStatus = "Upcoming"
)

func (p Position) StationStatus(index int) StationStatus {
	if p == PositionNotStarted {
		return StationStatusUpcoming
	}

	if p.Dwelling() {
		switch {
		case index == p.StopIndex():
			return StationStatusAtStation
		case index == p.StopIndex()+1:
			return StationStatusNext
		case index < p.StopIndex():
			return StationStatusPassed
		default:
			return StationStatusUpcoming
		}
	}

	switch {
	case index <= int(p):
		return StationStatusPassed
	case index == int(p)+1:
		return StationStatusNext
	default:
		return StationStatusUpcoming
	}
}

// Estimate computes the train's position from its schedule, the journey
// calendar date and an injected clock. It is a pure function of its
// arguments: wall-clock time is never read here, and repeated calls with
// identical inputs give identical results.
//
// Times are compared at minute precision in an unspecified shared civil
// time, which is as much as a display estimate needs.
func Estimate(schedule []raildata.StationStop, journeyDate raildata.CalendarDate, now time.Time) (Position, error) {
	if len(schedule) == 0 {
		return PositionNotStarted, invalidSchedule("no stops")
	}

	// Calendar-date subtraction: a journey dated today is dayDiff 0
	// whatever the time of day.
	dayDiff := journeyDate.DaysSince(raildata.DateOf(now))

	if dayDiff > 0 {
		return PositionNotStarted, nil
	}
	if dayDiff < -1 {
		return PositionCompleted(len(schedule)), nil
	}

	nowMinute := now.Hour()*60 + now.Minute()
	position := PositionNotStarted

	for index, stop := range schedule {
		stopDay := stop.DayOffset - 1

		if stopDay > dayDiff {
			// This and every later stop are on a not-yet-reached
			// day of the journey.
			break
		}

		if stopDay < dayDiff {
			// A whole journey day has elapsed past this stop.
			position = Position(index)
			continue
		}

		if stop.Departure != nil {
			if nowMinute >= stop.Departure.MinuteOfDay() {
				position = Position(index)
				continue
			}

			if stop.Arrival != nil && nowMinute >= stop.Arrival.MinuteOfDay() {
				position = Position(index) - 0.5
			}

			break
		}

		// Terminus: only an arrival. Reaching it means the journey
		// is at its final stop, a whole position by definition.
		if stop.Arrival != nil && nowMinute >= stop.Arrival.MinuteOfDay() {
			position = Position(index)
		}

		break
	}

	return position, nil
}
