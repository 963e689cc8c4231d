package service

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

type ListingStore interface {
	Insert(ctx context.Context, c domain.Collection, doc any) error
	All(ctx context.Context, c domain.Collection) ([]map[string]any, error)
	ByMerchant(ctx context.Context, c domain.Collection, merchantID string) ([]map[string]any, error)
	Patch(ctx context.Context, c domain.Collection, id string, patch map[string]any) error
	Delete(ctx context.Context, c domain.Collection, id string) error
}

type ListingSvc struct {
	store ListingStore
}

func NewListingSvc(store ListingStore) *ListingSvc {
	return &ListingSvc{store: store}
}

type AddListingInput struct {
	ListingType    string
	Name           string
	Price          any
	Description    string
	MerchantID     string
	RateType       string
	Unit           string
	StockQuantity  int
	Specialization string
}

// Add creates a listing of the requested kind, remapping the generic
// request fields onto the kind's own schema.
func (s *ListingSvc) Add(ctx context.Context, in AddListingInput) (string, error) {
	if in.ListingType == "" || in.Name == "" || in.Price == nil || in.MerchantID == "" {
		return "", invalidf("listingType, name, price and merchantId are required")
	}
	coll, err := domain.ParseListingType(in.ListingType)
	if err != nil {
		return "", invalidf("%v", err)
	}
	price, err := toNumber(in.Price)
	if err != nil {
		return "", invalidf("price must be a number")
	}

	meta := domain.ListingMeta{ID: uuid.NewString(), Name: in.Name, MerchantID: in.MerchantID}
	var doc any
	switch coll {
	case domain.Equipments:
		doc = domain.Equipment{ListingMeta: meta, Description: in.Description, Rate: price, RateType: in.RateType}
	case domain.Materials:
		doc = domain.Material{ListingMeta: meta, Specs: in.Description, PricePerUnit: price, Unit: in.Unit, StockQuantity: in.StockQuantity}
	case domain.Contractors:
		doc = domain.Contractor{ListingMeta: meta, Bio: in.Description, Specialization: in.Specialization, Rate: price}
	}
	if err := s.store.Insert(ctx, coll, doc); err != nil {
		return "", err
	}
	return meta.ID, nil
}

// Patch applies an arbitrary partial update after the collection name
// passes the closed-set check. Fields are not validated.
func (s *ListingSvc) Patch(ctx context.Context, collName, id string, patch map[string]any) error {
	coll, err := domain.ParseCollection(collName)
	if err != nil {
		return invalidf("%v", err)
	}
	delete(patch, "_id")
	delete(patch, "id")
	if len(patch) == 0 {
		return nil
	}
	return s.store.Patch(ctx, coll, id, patch)
}

func (s *ListingSvc) Remove(ctx context.Context, collName, id string) error {
	coll, err := domain.ParseCollection(collName)
	if err != nil {
		return invalidf("%v", err)
	}
	return s.store.Delete(ctx, coll, id)
}

// ForMerchant queries all three collections concurrently and returns the
// concatenation, each document tagged with its source collection. The
// three branches have no ordering requirement.
func (s *ListingSvc) ForMerchant(ctx context.Context, merchantID string) ([]map[string]any, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var out []map[string]any

	for _, coll := range []domain.Collection{domain.Equipments, domain.Materials, domain.Contractors} {
		coll := coll
		g.Go(func() error {
			docs, err := s.store.ByMerchant(ctx, coll, merchantID)
			if err != nil {
				return err
			}
			for i := range docs {
				docs[i] = normalize(docs[i])
				docs[i]["collection"] = coll.String()
			}
			mu.Lock()
			out = append(out, docs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// All returns every document of one collection, no pagination or order.
func (s *ListingSvc) All(ctx context.Context, coll domain.Collection) ([]map[string]any, error) {
	docs, err := s.store.All(ctx, coll)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i] = normalize(docs[i])
	}
	return docs, nil
}

// normalize exposes the storage _id as id.
func normalize(doc map[string]any) map[string]any {
	if v, ok := doc["_id"]; ok {
		doc["id"] = v
		delete(doc, "_id")
	}
	return doc
}

func toNumber(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	default:
		return 0, strconv.ErrSyntax
	}
}
