package query

// PNRStatus looks up the booking status for a 10-digit reservation
// number.
type PNRStatus struct {
	PNRNumber string
}
