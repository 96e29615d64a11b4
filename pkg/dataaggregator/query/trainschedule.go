package query

// TrainSchedule looks up a train's details and normalised station
// schedule by train number.
type TrainSchedule struct {
	TrainNumber string
}
