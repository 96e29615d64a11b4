package raildata

import (
	"encoding/json"
	"time"
)

// TrainDetails is a train's static description plus its normalised
// station schedule.
type TrainDetails struct {
	TrainNumber string `groups:"basic" json:"train_number"`
	TrainName   string `groups:"basic" json:"train_name"`

	Origin      string `groups:"basic" json:"origin"`
	Destination string `groups:"basic" json:"destination"`

	// RunningOn encodes the days of operation as seven Y/N characters,
	// Sunday first, e.g. "YNYNYNN".
	RunningOn string `groups:"basic" json:"running_on"`

	Schedule []StationStop `groups:"detailed" json:"schedule"`

	// RetrievedAt records when this record was fetched from the
	// provider, so cached copies can be surfaced as such.
	RetrievedAt time.Time `groups:"detailed" json:"retrieved_at"`
}

func (t TrainDetails) MarshalBinary() ([]byte, error) {
	return json.Marshal(t)
}

func (t *TrainDetails) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, t)
}
