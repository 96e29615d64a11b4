package railapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/railtrace/railtrace/pkg/dataaggregator/query"
	"github.com/railtrace/railtrace/pkg/raildata"
	"github.com/railtrace/railtrace/pkg/tracker"
)

func (s Source) TrainScheduleQuery(q query.TrainSchedule) (*raildata.TrainDetails, error) {
	url := fmt.Sprintf("%s/api/train/%s", s.ScheduleEndpoint, q.TrainNumber)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.doWithRetry(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope trainScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding train schedule response: %w", err)
	}

	if !envelope.Success || envelope.Data == nil {
		return nil, ErrNoData
	}

	rawStops := make([]raildata.RawStop, 0, len(envelope.Data.Stations))
	for _, station := range envelope.Data.Stations {
		rawStops = append(rawStops, raildata.RawStop{
			StationCode:   station.StationCode,
			StationName:   station.StationName,
			ArrivalTime:   station.ArrivalTime,
			DepartureTime: station.DepartureTime,
			Distance:      station.Distance,
			DayCount:      station.DayCount,
			Seq:           station.Seq,
		})
	}

	// A schedule that fails normalisation is rejected outright; a
	// partial schedule is worse than no answer for a position estimate.
	schedule, err := tracker.Normalize(rawStops)
	if err != nil {
		return nil, err
	}

	return &raildata.TrainDetails{
		TrainNumber: q.TrainNumber,
		TrainName:   envelope.Data.TrainName,

		Origin:      envelope.Data.SourceStationName,
		Destination: envelope.Data.DestinationStationName,

		RunningOn: envelope.Data.RunningOn,

		Schedule: schedule,

		RetrievedAt: time.Now(),
	}, nil
}

type trainScheduleResponse struct {
	Success bool               `json:"success"`
	Data    *trainScheduleData `json:"data"`
}

type trainScheduleData struct {
	TrainName string `json:"trainName"`

	SourceStationName      string `json:"sourceStationName"`
	DestinationStationName string `json:"destinationStationName"`

	RunningOn string `json:"runningOn"`

	Stations []trainScheduleStation `json:"stations"`
}

type trainScheduleStation struct {
	StationCode string `json:"stationCode"`
	StationName string `json:"stationName"`

	ArrivalTime   string `json:"arrivalTime"`
	DepartureTime string `json:"departureTime"`

	Distance string `json:"distance"`
	DayCount string `json:"dayCount"`
	Seq      string `json:"seq"`
}
