package raildata

import (
	"encoding/json"
	"time"
)

// PNRStatus is the booking record returned for a reservation number.
type PNRStatus struct {
	PNRNumber string `groups:"basic" json:"pnr_number"`

	TrainNumber string `groups:"basic" json:"train_number"`
	TrainName   string `groups:"basic" json:"train_name"`

	DateOfJourney string `groups:"basic" json:"date_of_journey"`

	SourceStation      string `groups:"basic" json:"source_station"`
	DestinationStation string `groups:"basic" json:"destination_station"`
	BoardingPoint      string `groups:"detailed" json:"boarding_point"`
	ReservationUpto    string `groups:"detailed" json:"reservation_upto"`

	JourneyClass string `groups:"basic" json:"journey_class"`
	ChartStatus  string `groups:"detailed" json:"chart_status"`

	NumberOfPassengers int         `groups:"basic" json:"number_of_passengers"`
	Passengers         []Passenger `groups:"detailed" json:"passengers"`

	RetrievedAt time.Time `groups:"detailed" json:"retrieved_at"`
}

// Passenger is one traveller on a booking. Names are never exposed by
// the provider, only serial numbers and berth statuses.
type Passenger struct {
	SerialNumber int `groups:"detailed" json:"serial_number"`

	Quota string `groups:"detailed" json:"quota"`

	BookingStatus        string `groups:"detailed" json:"booking_status"`
	BookingStatusDetails string `groups:"detailed" json:"booking_status_details"`
	BookingBerthNumber   int    `groups:"detailed" json:"booking_berth_number"`

	CurrentStatus        string `groups:"detailed" json:"current_status"`
	CurrentStatusDetails string `groups:"detailed" json:"current_status_details"`
}

func (p PNRStatus) MarshalBinary() ([]byte, error) {
	return json.Marshal(p)
}

func (p *PNRStatus) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}
