package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
	"github.com/BLVNQ/buildconnect-server/internal/notify"
)

type fakeBookingStore struct {
	inserted     []*domain.Booking
	insertErr    error
	byClient     []domain.Booking
	byClientErr  error
	statusCalls  []string
	setStatusErr error
}

func (f *fakeBookingStore) Insert(_ context.Context, b *domain.Booking) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	b.ID = "bk-1"
	f.inserted = append(f.inserted, b)
	return nil
}

func (f *fakeBookingStore) ByClient(_ context.Context, _ string) ([]domain.Booking, error) {
	return f.byClient, f.byClientErr
}

func (f *fakeBookingStore) SetStatus(_ context.Context, id, status string) error {
	f.statusCalls = append(f.statusCalls, id+":"+status)
	return f.setStatusErr
}

type fakeNotifier struct {
	confirmed []notify.BookingConfirmedEvent
	cancelled []notify.BookingCancelledEvent
	err       error
}

func (f *fakeNotifier) BookingConfirmed(_ context.Context, ev notify.BookingConfirmedEvent) error {
	f.confirmed = append(f.confirmed, ev)
	return f.err
}

func (f *fakeNotifier) BookingCancelled(_ context.Context, ev notify.BookingCancelledEvent) error {
	f.cancelled = append(f.cancelled, ev)
	return f.err
}

func validBookingInput() CreateBookingInput {
	return CreateBookingInput{
		UserID:       "u1",
		CartItems:    []domain.BookingItem{{Name: "Excavator", Quantity: 1, Price: 1500}},
		TotalPrice:   1500,
		SiteLocation: "Plot 7, Ring Road",
	}
}

func TestBookingCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"missing_user", func(in *CreateBookingInput) { in.UserID = "" }},
		{"empty_cart", func(in *CreateBookingInput) { in.CartItems = nil }},
		{"missing_site", func(in *CreateBookingInput) { in.SiteLocation = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBookingStore{}
			n := &fakeNotifier{}
			svc := NewBookingSvc(store, n, zap.NewNop())

			in := validBookingInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Empty(t, store.inserted, "no booking may be written on invalid input")
			assert.Empty(t, n.confirmed, "no notification may fire on invalid input")
		})
	}
}

func TestBookingCreateSuccess(t *testing.T) {
	store := &fakeBookingStore{}
	n := &fakeNotifier{}
	svc := NewBookingSvc(store, n, zap.NewNop())

	id, err := svc.Create(context.Background(), validBookingInput())
	require.NoError(t, err)
	assert.Equal(t, "bk-1", id)

	require.Len(t, store.inserted, 1)
	b := store.inserted[0]
	assert.Equal(t, domain.BookingConfirmed, b.Status)
	assert.WithinDuration(t, time.Now().UTC(), b.BookingDate, 5*time.Second)

	require.Len(t, n.confirmed, 1, "notifier must be invoked exactly once")
	assert.Equal(t, "bk-1", n.confirmed[0].BookingID)
	assert.Equal(t, "Plot 7, Ring Road", n.confirmed[0].SiteLocation)
}

func TestBookingCreateNotifyFailureStillSucceeds(t *testing.T) {
	store := &fakeBookingStore{}
	n := &fakeNotifier{err: errors.New("smtp down")}
	svc := NewBookingSvc(store, n, zap.NewNop())

	id, err := svc.Create(context.Background(), validBookingInput())
	require.NoError(t, err, "notification failure must not affect the booking outcome")
	assert.Equal(t, "bk-1", id)
	assert.Len(t, n.confirmed, 1)
}

func TestBookingCreateStoreFailure(t *testing.T) {
	store := &fakeBookingStore{insertErr: errors.New("cluster unreachable")}
	n := &fakeNotifier{}
	svc := NewBookingSvc(store, n, zap.NewNop())

	_, err := svc.Create(context.Background(), validBookingInput())
	require.Error(t, err)
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
	assert.Empty(t, n.confirmed, "no notification without a persisted booking")
}

func TestBookingCancel(t *testing.T) {
	store := &fakeBookingStore{}
	svc := NewBookingSvc(store, &fakeNotifier{}, zap.NewNop())

	require.NoError(t, svc.Cancel(context.Background(), "bk-9"))
	assert.Equal(t, []string{"bk-9:" + domain.BookingCancelled}, store.statusCalls)

	// re-cancelling is the same unconditional transition
	require.NoError(t, svc.Cancel(context.Background(), "bk-9"))
	assert.Len(t, store.statusCalls, 2)
}

func TestBookingCancelStoreError(t *testing.T) {
	store := &fakeBookingStore{setStatusErr: errors.New("no matching document")}
	svc := NewBookingSvc(store, &fakeNotifier{}, zap.NewNop())

	err := svc.Cancel(context.Background(), "missing")
	require.Error(t, err)
}

func TestBookingForClientSortsNewestFirst(t *testing.T) {
	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeBookingStore{byClient: []domain.Booking{
		{ID: "old", BookingDate: base},
		{ID: "newest", BookingDate: base.Add(48 * time.Hour)},
		{ID: "mid", BookingDate: base.Add(24 * time.Hour)},
	}}
	svc := NewBookingSvc(store, &fakeNotifier{}, zap.NewNop())

	out, err := svc.ForClient(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "newest", out[0].ID)
	assert.Equal(t, "mid", out[1].ID)
	assert.Equal(t, "old", out[2].ID)
}
