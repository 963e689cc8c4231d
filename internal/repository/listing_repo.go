package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

// ListingRepo reads and writes the three listing collections. Documents
// are schemaless after arbitrary patches, so reads come back as raw maps.
type ListingRepo struct{ db *mongo.Database }

func NewListingRepo(db *mongo.Database) *ListingRepo {
	return &ListingRepo{db: db}
}

func (r *ListingRepo) coll(c domain.Collection) *mongo.Collection {
	return r.db.Collection(c.String())
}

func (r *ListingRepo) Insert(ctx context.Context, c domain.Collection, doc any) error {
	_, err := r.coll(c).InsertOne(ctx, doc)
	return err
}

func (r *ListingRepo) All(ctx context.Context, c domain.Collection) ([]map[string]any, error) {
	return r.find(ctx, c, bson.M{})
}

func (r *ListingRepo) ByMerchant(ctx context.Context, c domain.Collection, merchantID string) ([]map[string]any, error) {
	return r.find(ctx, c, bson.M{"merchantId": merchantID})
}

// Patch applies an arbitrary partial update; fields are not validated.
func (r *ListingRepo) Patch(ctx context.Context, c domain.Collection, id string, patch map[string]any) error {
	res, err := r.coll(c).UpdateByID(ctx, id, bson.M{"$set": patch})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoDocument
	}
	return nil
}

func (r *ListingRepo) Delete(ctx context.Context, c domain.Collection, id string) error {
	_, err := r.coll(c).DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *ListingRepo) find(ctx context.Context, c domain.Collection, filter bson.M) ([]map[string]any, error) {
	cur, err := r.coll(c).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var out []map[string]any
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
