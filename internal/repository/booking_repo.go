package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

const bookingsCollection = "bookings"

type BookingRepo struct{ db *mongo.Database }

func NewBookingRepo(db *mongo.Database) *BookingRepo {
	return &BookingRepo{db: db}
}

func (r *BookingRepo) coll() *mongo.Collection {
	return r.db.Collection(bookingsCollection)
}

func (r *BookingRepo) Insert(ctx context.Context, b *domain.Booking) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err := r.coll().InsertOne(ctx, b)
	return err
}

func (r *BookingRepo) ByClient(ctx context.Context, clientID string) ([]domain.Booking, error) {
	cur, err := r.coll().Find(ctx, bson.M{"clientId": clientID})
	if err != nil {
		return nil, err
	}
	var out []domain.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetStatus transitions a booking unconditionally; a missing id is
// reported as ErrNoDocument rather than silently matching nothing.
func (r *BookingRepo) SetStatus(ctx context.Context, id, status string) error {
	res, err := r.coll().UpdateByID(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}
