package domain

import "time"

const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
)

// Booking is a client's confirmed order for one or more listings,
// delivered to a site location. Status is the only mutable field.
type Booking struct {
	ID             string         `bson:"_id" json:"id"`
	ClientID       string         `bson:"clientId" json:"clientId"`
	Items          []BookingItem  `bson:"items" json:"items"`
	TotalAmount    float64        `bson:"totalAmount" json:"totalAmount"`
	Status         string         `bson:"status" json:"status"`
	BookingDate    time.Time      `bson:"bookingDate" json:"bookingDate"`
	PaymentDetails map[string]any `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	SiteLocation   string         `bson:"siteLocation" json:"siteLocation"`
}

// BookingItem mirrors a cart entry. Shapes are not validated beyond the
// cart being non-empty; unknown fields from the client are dropped.
type BookingItem struct {
	ListingID string  `bson:"listingId,omitempty" json:"listingId,omitempty"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}
