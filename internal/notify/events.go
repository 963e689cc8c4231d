package notify

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

// Routing keys for booking events on the topic exchange.
const (
	RKBookingConfirmed = "booking.confirmed"
	RKBookingCancelled = "booking.cancelled"
)

// BookingConfirmedEvent carries enough to build the confirmation email
// without a trip back to the bookings collection.
type BookingConfirmedEvent struct {
	BookingID    string               `json:"booking_id"`
	ClientID     string               `json:"client_id"`
	Items        []domain.BookingItem `json:"items"`
	TotalAmount  float64              `json:"total_amount"`
	SiteLocation string               `json:"site_location"`
	BookingDate  time.Time            `json:"booking_date"`
}

type BookingCancelledEvent struct {
	BookingID string `json:"booking_id"`
}

func decode[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		var zero T
		return zero, fmt.Errorf("decode payload: %w", err)
	}
	return t, nil
}
