package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
	"github.com/BLVNQ/buildconnect-server/internal/notify"
)

type BookingStore interface {
	Insert(ctx context.Context, b *domain.Booking) error
	ByClient(ctx context.Context, clientID string) ([]domain.Booking, error)
	SetStatus(ctx context.Context, id, status string) error
}

type BookingSvc struct {
	store    BookingStore
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingSvc(store BookingStore, notifier notify.Notifier, log *zap.Logger) *BookingSvc {
	return &BookingSvc{store: store, notifier: notifier, log: log}
}

type CreateBookingInput struct {
	UserID         string
	CartItems      []domain.BookingItem
	TotalPrice     float64
	PaymentDetails map[string]any
	SiteLocation   string
}

// Create persists the booking, then dispatches the confirmation as a
// best-effort side effect. Once the insert succeeds the booking id is
// the outcome; a failed notification only gets logged.
func (s *BookingSvc) Create(ctx context.Context, in CreateBookingInput) (string, error) {
	if in.UserID == "" {
		return "", invalidf("userId is required")
	}
	if len(in.CartItems) == 0 {
		return "", invalidf("cartItems must not be empty")
	}
	if in.SiteLocation == "" {
		return "", invalidf("siteLocation is required")
	}

	b := &domain.Booking{
		ClientID:       in.UserID,
		Items:          in.CartItems,
		TotalAmount:    in.TotalPrice,
		Status:         domain.BookingConfirmed,
		BookingDate:    time.Now().UTC(),
		PaymentDetails: in.PaymentDetails,
		SiteLocation:   in.SiteLocation,
	}
	if err := s.store.Insert(ctx, b); err != nil {
		return "", err
	}

	ev := notify.BookingConfirmedEvent{
		BookingID:    b.ID,
		ClientID:     b.ClientID,
		Items:        b.Items,
		TotalAmount:  b.TotalAmount,
		SiteLocation: b.SiteLocation,
		BookingDate:  b.BookingDate,
	}
	if err := s.notifier.BookingConfirmed(ctx, ev); err != nil {
		s.log.Warn("booking confirmation notify failed",
			zap.String("booking_id", b.ID), zap.Error(err))
	}
	return b.ID, nil
}

// Cancel transitions any booking to Cancelled, re-cancelling included.
// There is no existence pre-check; a missing id surfaces as a store error.
func (s *BookingSvc) Cancel(ctx context.Context, id string) error {
	if err := s.store.SetStatus(ctx, id, domain.BookingCancelled); err != nil {
		return err
	}
	ev := notify.BookingCancelledEvent{BookingID: id}
	if err := s.notifier.BookingCancelled(ctx, ev); err != nil {
		s.log.Warn("booking cancel notify failed", zap.String("booking_id", id), zap.Error(err))
	}
	return nil
}

// ForClient returns a client's bookings newest first, sorted after
// retrieval.
func (s *BookingSvc) ForClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	out, err := s.store.ByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BookingDate.After(out[j].BookingDate)
	})
	return out, nil
}
