package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BLVNQ/buildconnect-server/internal/domain"
)

type fakeListingStore struct {
	inserted    map[domain.Collection][]any
	byMerchant  map[domain.Collection][]map[string]any
	all         map[domain.Collection][]map[string]any
	patches     []string
	lastPatch   map[string]any
	deletes     []string
	byMerchErr  error
	queryErr    error
	mutationErr error
}

func newFakeListingStore() *fakeListingStore {
	return &fakeListingStore{
		inserted:   map[domain.Collection][]any{},
		byMerchant: map[domain.Collection][]map[string]any{},
		all:        map[domain.Collection][]map[string]any{},
	}
}

func (f *fakeListingStore) Insert(_ context.Context, c domain.Collection, doc any) error {
	if f.mutationErr != nil {
		return f.mutationErr
	}
	f.inserted[c] = append(f.inserted[c], doc)
	return nil
}

func (f *fakeListingStore) All(_ context.Context, c domain.Collection) ([]map[string]any, error) {
	return f.all[c], f.queryErr
}

func (f *fakeListingStore) ByMerchant(_ context.Context, c domain.Collection, _ string) ([]map[string]any, error) {
	return f.byMerchant[c], f.byMerchErr
}

func (f *fakeListingStore) Patch(_ context.Context, c domain.Collection, id string, patch map[string]any) error {
	f.patches = append(f.patches, c.String()+"/"+id)
	f.lastPatch = patch
	return f.mutationErr
}

func (f *fakeListingStore) Delete(_ context.Context, c domain.Collection, id string) error {
	f.deletes = append(f.deletes, c.String()+"/"+id)
	return f.mutationErr
}

func TestAddListingRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddListingInput)
	}{
		{"missing_type", func(in *AddListingInput) { in.ListingType = "" }},
		{"missing_name", func(in *AddListingInput) { in.Name = "" }},
		{"missing_price", func(in *AddListingInput) { in.Price = nil }},
		{"missing_merchant", func(in *AddListingInput) { in.MerchantID = "" }},
		{"unknown_type", func(in *AddListingInput) { in.ListingType = "Vehicle" }},
		{"bad_price", func(in *AddListingInput) { in.Price = "not-a-number" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeListingStore()
			svc := NewListingSvc(store)

			in := AddListingInput{ListingType: "Equipment", Name: "Crane", Price: 200.0, MerchantID: "m1"}
			tt.mutate(&in)

			_, err := svc.Add(context.Background(), in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Empty(t, store.inserted)
		})
	}
}

func TestAddListingMaterialMapsFields(t *testing.T) {
	store := newFakeListingStore()
	svc := NewListingSvc(store)

	id, err := svc.Add(context.Background(), AddListingInput{
		ListingType:   "Material",
		Name:          "Portland Cement",
		Price:         "349.5", // numeric strings are accepted
		Description:   "OPC 53 grade",
		MerchantID:    "m1",
		Unit:          "bag",
		StockQuantity: 120,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Len(t, store.inserted[domain.Materials], 1)
	m, ok := store.inserted[domain.Materials][0].(domain.Material)
	require.True(t, ok)
	assert.Equal(t, id, m.ID)
	assert.Equal(t, "OPC 53 grade", m.Specs, "description maps to specs")
	assert.Equal(t, 349.5, m.PricePerUnit, "price maps to pricePerUnit")
	assert.Equal(t, "bag", m.Unit)
	assert.Equal(t, 120, m.StockQuantity)
}

func TestAddListingContractorMapsFields(t *testing.T) {
	store := newFakeListingStore()
	svc := NewListingSvc(store)

	_, err := svc.Add(context.Background(), AddListingInput{
		ListingType:    "Contractor",
		Name:           "R. Sharma",
		Price:          1200.0,
		Description:    "15 years of site experience",
		MerchantID:     "m2",
		Specialization: "Electrical",
	})
	require.NoError(t, err)

	require.Len(t, store.inserted[domain.Contractors], 1)
	ct, ok := store.inserted[domain.Contractors][0].(domain.Contractor)
	require.True(t, ok)
	assert.Equal(t, "15 years of site experience", ct.Bio, "description maps to bio")
	assert.Equal(t, 1200.0, ct.Rate)
	assert.Equal(t, "Electrical", ct.Specialization)
}

func TestPatchRejectsUnknownCollection(t *testing.T) {
	store := newFakeListingStore()
	svc := NewListingSvc(store)

	err := svc.Patch(context.Background(), "users", "x1", map[string]any{"name": "n"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, store.patches, "no store call for a rejected collection")

	err = svc.Remove(context.Background(), "users", "x1")
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, store.deletes)
}

func TestPatchKnownCollection(t *testing.T) {
	store := newFakeListingStore()
	svc := NewListingSvc(store)

	patch := map[string]any{"rate": 250, "_id": "spoofed"}
	require.NoError(t, svc.Patch(context.Background(), "equipment", "e1", patch))
	assert.Equal(t, []string{"equipment/e1"}, store.patches)
	assert.NotContains(t, store.lastPatch, "_id")
	assert.Equal(t, 250, store.lastPatch["rate"])

	require.NoError(t, svc.Remove(context.Background(), "equipment", "e1"))
	assert.Equal(t, []string{"equipment/e1"}, store.deletes)
}

func TestForMerchantConcatenatesAndTags(t *testing.T) {
	store := newFakeListingStore()
	store.byMerchant[domain.Equipments] = []map[string]any{
		{"_id": "e1", "name": "Crane"},
		{"_id": "e2", "name": "Mixer"},
	}
	store.byMerchant[domain.Materials] = []map[string]any{
		{"_id": "m1", "name": "Cement"},
	}
	store.byMerchant[domain.Contractors] = nil
	svc := NewListingSvc(store)

	out, err := svc.ForMerchant(context.Background(), "mer-1")
	require.NoError(t, err)
	require.Len(t, out, 3, "result length equals the sum across collections")

	byColl := map[string]int{}
	for _, doc := range out {
		coll, ok := doc["collection"].(string)
		require.True(t, ok, "every item carries its source collection")
		byColl[coll]++
		assert.Contains(t, doc, "id")
		assert.NotContains(t, doc, "_id")
	}
	assert.Equal(t, map[string]int{"equipment": 2, "materials": 1}, byColl)
}

func TestAllNormalizesID(t *testing.T) {
	store := newFakeListingStore()
	store.all[domain.Materials] = []map[string]any{{"_id": "m1", "specs": "OPC 53 grade", "pricePerUnit": 349.5}}
	svc := NewListingSvc(store)

	out, err := svc.All(context.Background(), domain.Materials)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "m1", out[0]["id"])
	assert.Equal(t, "OPC 53 grade", out[0]["specs"])
	assert.Equal(t, 349.5, out[0]["pricePerUnit"])
}
