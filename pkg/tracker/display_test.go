package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railtrace/railtrace/pkg/raildata"
)

// expressSchedule is a longer run with a few stops near 200-unit
// distance marks.
func expressSchedule() []raildata.StationStop {
	distances := []float64{0, 90, 205, 320, 410, 530, 610, 790, 1010, 1190}
	stops := make([]raildata.StationStop, len(distances))

	for i, distance := range distances {
		stops[i] = raildata.StationStop{
			Code:               string(rune('A' + i)),
			Sequence:           i + 1,
			DayOffset:          1,
			DistanceFromOrigin: distance,
		}
	}

	return stops
}

func codes(stops []raildata.StationStop) []string {
	var result []string
	for _, stop := range stops {
		result = append(result, stop.Code)
	}

	return result
}

func TestDisplayStopsExpandedReturnsEverything(t *testing.T) {
	schedule := expressSchedule()

	for _, position := range []Position{PositionNotStarted, 0, 2.5, PositionCompleted(len(schedule))} {
		result := DisplayStops(schedule, position, true)
		assert.Equal(t, schedule, result)
	}
}

func TestDisplayStopsAlwaysIncludesEndpoints(t *testing.T) {
	schedule := expressSchedule()

	for _, position := range []Position{PositionNotStarted, 0, 3, 4.5, PositionCompleted(len(schedule))} {
		result := DisplayStops(schedule, position, false)
		require.NotEmpty(t, result)

		assert.Equal(t, schedule[0].Code, result[0].Code)
		assert.Equal(t, schedule[len(schedule)-1].Code, result[len(result)-1].Code)
	}
}

func TestDisplayStopsDwellingIncludesCurrentAndNext(t *testing.T) {
	schedule := expressSchedule()

	// Dwelling at stop 4 (position 3.5): both it and stop 5 shown.
	result := codes(DisplayStops(schedule, 3.5, false))

	assert.Contains(t, result, schedule[4].Code)
	assert.Contains(t, result, schedule[5].Code)
}

func TestDisplayStopsInTransitIncludesNext(t *testing.T) {
	schedule := expressSchedule()

	result := codes(DisplayStops(schedule, 3, false))

	assert.Contains(t, result, schedule[4].Code)
}

func TestDisplayStopsMilestones(t *testing.T) {
	schedule := expressSchedule()

	// Distances 205, 410, 610 and 1010 all sit within 20 units of a
	// 200 mark; only three milestones are kept.
	result := codes(DisplayStops(schedule, PositionNotStarted, false))

	assert.Contains(t, result, "C")
	assert.Contains(t, result, "E")
	assert.Contains(t, result, "G")
	assert.NotContains(t, result, "I")
}

func TestDisplayStopsOrderFollowsSchedule(t *testing.T) {
	schedule := expressSchedule()

	result := DisplayStops(schedule, 6.5, false)

	previous := 0
	for _, stop := range result {
		assert.Greater(t, stop.Sequence, previous)
		previous = stop.Sequence
	}
}

func TestDisplayStopsNoDuplicatesWhenCurrentIsTerminus(t *testing.T) {
	schedule := expressSchedule()
	last := len(schedule) - 1

	// Dwelling at the terminus: it is both "current" and "last" but
	// appears once.
	result := DisplayStops(schedule, Position(last)-0.5, false)

	seen := map[int]int{}
	for _, stop := range result {
		seen[stop.Sequence]++
		assert.Equal(t, 1, seen[stop.Sequence])
	}
}

func TestDisplayStopsTwoStopSchedule(t *testing.T) {
	schedule := []raildata.StationStop{
		{Code: "A", Sequence: 1, DayOffset: 1},
		{Code: "B", Sequence: 2, DayOffset: 1, DistanceFromOrigin: 40},
	}

	result := codes(DisplayStops(schedule, 0, false))
	assert.Equal(t, []string{"A", "B"}, result)
}

func TestDisplayStopsEmptySchedule(t *testing.T) {
	assert.Empty(t, DisplayStops(nil, PositionNotStarted, false))
	assert.Empty(t, DisplayStops(nil, PositionNotStarted, true))
}
