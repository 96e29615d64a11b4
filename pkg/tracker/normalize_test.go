package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/railtrace/railtrace/pkg/raildata"
)

func rawStop(code, arrival, departure, distance string) raildata.RawStop {
	return raildata.RawStop{
		StationCode:   code,
		StationName:   code + " Station",
		ArrivalTime:   arrival,
		DepartureTime: departure,
		Distance:      distance,
	}
}

func TestNormalizeAssignsSequenceAndDays(t *testing.T) {
	stops, err := Normalize([]raildata.RawStop{
		rawStop("LTT", "--", "11:30", "0"),
		rawStop("TNA", "11:55", "11:57", "17"),
		rawStop("KYN", "12:20", "12:25", "54"),
		rawStop("BSB", "23:40", "--", "1500"),
	})
	require.NoError(t, err)
	require.Len(t, stops, 4)

	for i, stop := range stops {
		assert.Equal(t, i+1, stop.Sequence)
		assert.Equal(t, 1, stop.DayOffset)
	}

	assert.Nil(t, stops[0].Arrival)
	assert.Nil(t, stops[3].Departure)
	assert.Equal(t, raildata.HaltNotApplicable, stops[0].HaltMinutes)
	assert.Equal(t, raildata.HaltNotApplicable, stops[3].HaltMinutes)
	assert.Equal(t, 2, stops[1].HaltMinutes)
	assert.Equal(t, 5, stops[2].HaltMinutes)
}

func TestNormalizeDayRollover(t *testing.T) {
	stops, err := Normalize([]raildata.RawStop{
		rawStop("LTT", "--", "22:10", "0"),
		rawStop("IGP", "01:20", "01:25", "130"),
		rawStop("BSL", "04:40", "04:45", "440"),
		rawStop("BSB", "11:40", "--", "1500"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stops[0].DayOffset)
	assert.Equal(t, 2, stops[1].DayOffset)
	assert.Equal(t, 2, stops[2].DayOffset)
	assert.Equal(t, 2, stops[3].DayOffset)
}

func TestNormalizeMidnightBoundaryStaysSameDay(t *testing.T) {
	// 23:xx -> 00:xx is deliberately not treated as a rollover.
	stops, err := Normalize([]raildata.RawStop{
		rawStop("A", "--", "23:50", "0"),
		rawStop("B", "00:10", "00:12", "30"),
		rawStop("C", "02:40", "--", "120"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stops[0].DayOffset)
	assert.Equal(t, 1, stops[1].DayOffset)
	assert.Equal(t, 1, stops[2].DayOffset)
}

func TestNormalizeDayOffsetNeverDecreases(t *testing.T) {
	stops, err := Normalize([]raildata.RawStop{
		rawStop("A", "--", "20:00", "0"),
		rawStop("B", "02:00", "02:05", "200"),
		rawStop("C", "09:00", "09:10", "500"),
		rawStop("D", "01:30", "01:35", "900"),
		rawStop("E", "08:00", "--", "1400"),
	})
	require.NoError(t, err)

	previous := 0
	for _, stop := range stops {
		assert.GreaterOrEqual(t, stop.DayOffset, previous)
		previous = stop.DayOffset
	}
	assert.Equal(t, 3, stops[4].DayOffset)
}

func TestNormalizeOvernightHaltWraps(t *testing.T) {
	stops, err := Normalize([]raildata.RawStop{
		rawStop("A", "--", "18:00", "0"),
		rawStop("B", "23:50", "00:05", "300"),
		rawStop("C", "06:00", "--", "700"),
	})
	require.NoError(t, err)

	assert.Equal(t, 15, stops[1].HaltMinutes)
}

func TestNormalizeHaltWithinBounds(t *testing.T) {
	stops, err := Normalize([]raildata.RawStop{
		rawStop("A", "--", "10:00", "0"),
		rawStop("B", "12:00", "12:00", "100"),
		rawStop("C", "14:00", "--", "200"),
	})
	require.NoError(t, err)

	for _, stop := range stops {
		if stop.HaltMinutes == raildata.HaltNotApplicable {
			continue
		}
		assert.GreaterOrEqual(t, stop.HaltMinutes, 0)
		assert.Less(t, stop.HaltMinutes, 1440)
	}
}

func TestNormalizeDuplicateCodesKept(t *testing.T) {
	// Junction codes can legitimately appear twice; sequence numbers
	// disambiguate and nothing gets deduplicated.
	stops, err := Normalize([]raildata.RawStop{
		rawStop("A", "--", "10:00", "0"),
		rawStop("JN", "11:00", "11:02", "80"),
		rawStop("JN", "12:30", "12:32", "160"),
		rawStop("B", "14:00", "--", "260"),
	})
	require.NoError(t, err)
	require.Len(t, stops, 4)
	assert.Equal(t, 2, stops[1].Sequence)
	assert.Equal(t, 3, stops[2].Sequence)
}

func TestNormalizeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		stops []raildata.RawStop
	}{
		{"empty", nil},
		{"single stop", []raildata.RawStop{rawStop("A", "--", "10:00", "0")}},
		{"decreasing distance", []raildata.RawStop{
			rawStop("A", "--", "10:00", "100"),
			rawStop("B", "11:00", "--", "50"),
		}},
		{"missing code", []raildata.RawStop{
			rawStop("A", "--", "10:00", "0"),
			rawStop("", "11:00", "--", "50"),
		}},
		{"unparseable distance", []raildata.RawStop{
			rawStop("A", "--", "10:00", "0"),
			rawStop("B", "11:00", "--", "far"),
		}},
		{"unparseable time", []raildata.RawStop{
			rawStop("A", "--", "10:00", "0"),
			rawStop("B", "eleven", "11:05", "50"),
			rawStop("C", "12:00", "--", "90"),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.stops)
			require.Error(t, err)

			var scheduleErr *InvalidScheduleError
			assert.ErrorAs(t, err, &scheduleErr)
		})
	}
}

func TestNormalizeEqualDistanceAllowed(t *testing.T) {
	// Non-decreasing, not strictly increasing: co-located halts happen
	// in real feeds and are not corruption.
	_, err := Normalize([]raildata.RawStop{
		rawStop("A", "--", "10:00", "0"),
		rawStop("B", "10:20", "10:22", "15"),
		rawStop("C", "10:30", "--", "15"),
	})
	assert.NoError(t, err)
}

func TestNormalizeTruncatesSeconds(t *testing.T) {
	stops, err := Normalize([]raildata.RawStop{
		rawStop("A", "--", "11:30:45", "0"),
		rawStop("B", "11:55:30", "--", "17"),
	})
	require.NoError(t, err)

	assert.Equal(t, raildata.ClockTime{Hour: 11, Minute: 30}, *stops[0].Departure)
	assert.Equal(t, raildata.ClockTime{Hour: 11, Minute: 55}, *stops[1].Arrival)
}
