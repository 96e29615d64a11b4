// Package share renders PNR statuses as plain text for the share and
// printable-ticket surfaces. No styling, no localisation - plain data
// a caller can hand to a clipboard or printer.
package share

import (
	"fmt"
	"strings"
	"time"

	"github.com/railtrace/railtrace/pkg/raildata"
)

// SummaryText builds the compact share message for a booking.
func SummaryText(status *raildata.PNRStatus) string {
	var statuses []string
	for i, passenger := range status.Passengers {
		statuses = append(statuses, fmt.Sprintf("Passenger %d: %s", i+1, passenger.CurrentStatusDetails))
	}

	return fmt.Sprintf(
		"PNR Status for %s:\nTrain: %s - %s\nDate: %s\nFrom: %s To: %s\nCurrent Status: %s",
		status.PNRNumber,
		status.TrainNumber, status.TrainName,
		JourneyDateOnly(status.DateOfJourney),
		status.SourceStation, status.DestinationStation,
		strings.Join(statuses, ", "),
	)
}

// TicketText builds the printable e-ticket layout.
func TicketText(status *raildata.PNRStatus, generatedAt time.Time) string {
	var b strings.Builder

	b.WriteString("INDIAN RAILWAYS\n")
	b.WriteString("E-Ticket Status\n")
	fmt.Fprintf(&b, "PNR: %s\n\n", status.PNRNumber)

	fmt.Fprintf(&b, "%s - %s\n", status.TrainNumber, status.TrainName)
	fmt.Fprintf(&b, "Date of Journey: %s\n", JourneyDateOnly(status.DateOfJourney))
	fmt.Fprintf(&b, "Class: %s\n\n", status.JourneyClass)

	fmt.Fprintf(&b, "From: %s\n", status.SourceStation)
	fmt.Fprintf(&b, "To: %s\n", status.DestinationStation)
	fmt.Fprintf(&b, "Boarding Point: %s\n", status.BoardingPoint)
	fmt.Fprintf(&b, "Reservation Upto: %s\n\n", status.ReservationUpto)

	chartStatus := status.ChartStatus
	if chartStatus == "" {
		chartStatus = "Not Available"
	}
	fmt.Fprintf(&b, "Chart Status: %s\n\n", chartStatus)

	b.WriteString("Passenger Details:\n")
	for _, passenger := range status.Passengers {
		fmt.Fprintf(&b, "  Passenger %d  Booking: %s  Current: %s\n",
			passenger.SerialNumber,
			passenger.BookingStatusDetails,
			passenger.CurrentStatusDetails,
		)
	}

	fmt.Fprintf(&b, "\nGenerated on: %s\n", generatedAt.Format("2 Jan 2006 15:04"))
	b.WriteString("This is a computer-generated ticket and does not require signature\n")

	return b.String()
}

// JourneyDateOnly trims a provider journey datetime like
// "Feb 9, 2025 11:30:05 AM" down to its date words.
func JourneyDateOnly(dateOfJourney string) string {
	parts := strings.Fields(dateOfJourney)
	if len(parts) < 3 {
		return dateOfJourney
	}

	return strings.Join(parts[:3], " ")
}
