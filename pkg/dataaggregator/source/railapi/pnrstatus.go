package railapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/railtrace/railtrace/pkg/dataaggregator/query"
	"github.com/railtrace/railtrace/pkg/raildata"
)

// ErrNoData is returned when the provider has no record for a
// reservation or train number.
var ErrNoData = errors.New("no data found")

func (s Source) PNRStatusQuery(q query.PNRStatus) (*raildata.PNRStatus, error) {
	url := fmt.Sprintf("%s/getPNRStatus/%s", s.PNRStatusEndpoint, q.PNRNumber)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-rapidapi-key", s.PNRStatusAPIKey)

	resp, err := s.doWithRetry(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope pnrStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding PNR status response: %w", err)
	}

	if !envelope.Success || envelope.Data == nil {
		return nil, ErrNoData
	}

	data := envelope.Data

	status := &raildata.PNRStatus{
		PNRNumber: data.PNRNumber,

		TrainNumber: data.TrainNumber,
		TrainName:   data.TrainName,

		DateOfJourney: data.DateOfJourney,

		SourceStation:      data.SourceStation,
		DestinationStation: data.DestinationStation,
		BoardingPoint:      data.BoardingPoint,
		ReservationUpto:    data.ReservationUpto,

		JourneyClass: data.JourneyClass,
		ChartStatus:  data.ChartStatus,

		NumberOfPassengers: data.NumberOfPassengers,

		RetrievedAt: time.Now(),
	}

	for _, passenger := range data.PassengerList {
		status.Passengers = append(status.Passengers, raildata.Passenger{
			SerialNumber: passenger.PassengerSerialNumber,

			Quota: passenger.PassengerQuota,

			BookingStatus:        passenger.BookingStatus,
			BookingStatusDetails: passenger.BookingStatusDetails,
			BookingBerthNumber:   passenger.BookingBerthNo,

			CurrentStatus:        passenger.CurrentStatus,
			CurrentStatusDetails: passenger.CurrentStatusDetails,
		})
	}

	return status, nil
}

type pnrStatusResponse struct {
	Success bool           `json:"success"`
	Data    *pnrStatusData `json:"data"`
}

type pnrStatusData struct {
	PNRNumber string `json:"pnrNumber"`

	TrainNumber string `json:"trainNumber"`
	TrainName   string `json:"trainName"`

	DateOfJourney string `json:"dateOfJourney"`

	SourceStation      string `json:"sourceStation"`
	DestinationStation string `json:"destinationStation"`
	BoardingPoint      string `json:"boardingPoint"`
	ReservationUpto    string `json:"reservationUpto"`

	JourneyClass string `json:"journeyClass"`
	ChartStatus  string `json:"chartStatus"`

	NumberOfPassengers int `json:"numberOfpassenger"`

	PassengerList []pnrPassenger `json:"passengerList"`
}

type pnrPassenger struct {
	PassengerSerialNumber int `json:"passengerSerialNumber"`

	PassengerQuota string `json:"passengerQuota"`

	BookingStatus        string `json:"bookingStatus"`
	BookingStatusDetails string `json:"bookingStatusDetails"`
	BookingBerthNo       int    `json:"bookingBerthNo"`

	CurrentStatus        string `json:"currentStatus"`
	CurrentStatusDetails string `json:"currentStatusDetails"`
}
