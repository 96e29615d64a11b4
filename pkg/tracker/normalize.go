package tracker

import (
	"strconv"
	"strings"

	"github.com/railtrace/railtrace/pkg/raildata"
)

// Normalize turns raw provider stop records into a fully ordered,
// day-annotated schedule. Input order is authoritative - the provider's
// own seq hints are ignored and sequence numbers are reassigned 1..N.
//
// Day offsets start at 1 and increment whenever a stop's hour is lower
// than the previous stop's, except for the exact 23->0 transition which
// is treated as the same day. That boundary exception mirrors the
// upstream schedule feeds this was validated against; overnight services
// arriving after 00:59 still roll over correctly.
func Normalize(rawStops []raildata.RawStop) ([]raildata.StationStop, error) {
	if len(rawStops) == 0 {
		return nil, invalidSchedule("no stops")
	}
	if len(rawStops) == 1 {
		return nil, invalidSchedule("schedule has a single stop")
	}

	stops := make([]raildata.StationStop, 0, len(rawStops))

	for index, raw := range rawStops {
		code := strings.TrimSpace(raw.StationCode)
		if code == "" {
			return nil, invalidSchedule("stop %d has no station code", index+1)
		}

		distance, err := strconv.ParseFloat(strings.TrimSpace(raw.Distance), 64)
		if err != nil {
			return nil, invalidSchedule("stop %s has unparseable distance %q", code, raw.Distance)
		}
		if distance < 0 {
			return nil, invalidSchedule("stop %s has negative distance", code)
		}

		arrival, err := raildata.ParseClockTime(raw.ArrivalTime)
		if err != nil {
			return nil, invalidSchedule("stop %s: %s", code, err)
		}
		departure, err := raildata.ParseClockTime(raw.DepartureTime)
		if err != nil {
			return nil, invalidSchedule("stop %s: %s", code, err)
		}

		stops = append(stops, raildata.StationStop{
			Code:               code,
			Name:               strings.TrimSpace(raw.StationName),
			Sequence:           index + 1,
			DistanceFromOrigin: distance,
			Arrival:            arrival,
			Departure:          departure,
		})
	}

	// The origin has no meaningful arrival and the terminus no
	// departure, whatever the feed claims.
	stops[0].Arrival = nil
	stops[len(stops)-1].Departure = nil

	for i := range stops {
		if i > 0 && stops[i].DistanceFromOrigin < stops[i-1].DistanceFromOrigin {
			return nil, invalidSchedule("distance decreases at stop %s", stops[i].Code)
		}

		stops[i].DayOffset = dayOffset(stops, i)
		stops[i].HaltMinutes = haltMinutes(stops[i])
	}

	return stops, nil
}

func dayOffset(stops []raildata.StationStop, index int) int {
	if index == 0 {
		return 1
	}

	day := stops[index-1].DayOffset

	previousHour, ok := referenceHour(stops[index-1])
	if !ok {
		return day
	}
	currentHour, ok := arrivalHour(stops[index])
	if !ok {
		return day
	}

	if currentHour < previousHour && !(previousHour == 23 && currentHour == 0) {
		day++
	}

	return day
}

// referenceHour is the hour the train leaves a stop - its departure
// hour, falling back to arrival for stops it only passes through.
func referenceHour(stop raildata.StationStop) (int, bool) {
	if stop.Departure != nil {
		return stop.Departure.Hour, true
	}
	if stop.Arrival != nil {
		return stop.Arrival.Hour, true
	}

	return 0, false
}

func arrivalHour(stop raildata.StationStop) (int, bool) {
	if stop.Arrival != nil {
		return stop.Arrival.Hour, true
	}
	if stop.Departure != nil {
		return stop.Departure.Hour, true
	}

	return 0, false
}

func haltMinutes(stop raildata.StationStop) int {
	if stop.Arrival == nil || stop.Departure == nil {
		return raildata.HaltNotApplicable
	}

	// Wrap by a day for halts spanning midnight.
	return ((stop.Departure.MinuteOfDay() - stop.Arrival.MinuteOfDay()) + 1440) % 1440
}
