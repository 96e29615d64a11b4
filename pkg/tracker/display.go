package tracker

import (
	"math"

	"golang.org/x/exp/slices"

	"github.com/railtrace/railtrace/pkg/raildata"
)

// Milestone stops punctuate a collapsed schedule roughly every 200
// distance units.
const (
	milestoneInterval  = 200
	milestoneTolerance = 20
	maxMilestones      = 3
)

// DisplayStops selects the stops worth showing for a given position.
// Expanded views get the whole schedule; collapsed views always keep the
// origin, the terminus and the stops around the train, padded with a few
// evenly spaced milestones. Order always follows the schedule.
func DisplayStops(schedule []raildata.StationStop, position Position, expanded bool) []raildata.StationStop {
	if expanded || len(schedule) == 0 {
		return schedule
	}

	// Stops are collected by sequence number, never by code - codes can
	// repeat within a route.
	selected := map[int]bool{}

	selected[schedule[0].Sequence] = true
	if len(schedule) > 1 {
		selected[schedule[len(schedule)-1].Sequence] = true
	}

	if position >= 0 && position < Position(len(schedule)) {
		if position.Dwelling() {
			current := position.StopIndex()
			if current >= 0 && current < len(schedule) {
				selected[schedule[current].Sequence] = true
			}
			if current+1 < len(schedule) {
				selected[schedule[current+1].Sequence] = true
			}
		} else if next := int(position) + 1; next < len(schedule) {
			selected[schedule[next].Sequence] = true
		}
	}

	milestones := 0
	for index, stop := range schedule {
		if milestones == maxMilestones {
			break
		}
		if index == 0 || index == len(schedule)-1 || selected[stop.Sequence] {
			continue
		}

		if math.Mod(stop.DistanceFromOrigin, milestoneInterval) < milestoneTolerance {
			selected[stop.Sequence] = true
			milestones++
		}
	}

	var result []raildata.StationStop
	for _, stop := range schedule {
		if selected[stop.Sequence] {
			result = append(result, stop)
		}
	}

	slices.SortFunc(result, func(a, b raildata.StationStop) int {
		return a.Sequence - b.Sequence
	})

	return result
}
