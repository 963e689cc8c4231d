package domain

import "fmt"

// Collection is the closed set of listing collections. Nothing outside
// this set is reachable through the listing routes.
type Collection string

const (
	Equipments  Collection = "equipment"
	Materials   Collection = "materials"
	Contractors Collection = "contractors"
)

func (c Collection) String() string { return string(c) }

// ParseCollection rejects any collection name outside the closed set.
func ParseCollection(s string) (Collection, error) {
	switch Collection(s) {
	case Equipments, Materials, Contractors:
		return Collection(s), nil
	default:
		return "", fmt.Errorf("invalid collection %q", s)
	}
}

// ParseListingType maps the add-listing enum to its target collection.
func ParseListingType(s string) (Collection, error) {
	switch s {
	case "Equipment":
		return Equipments, nil
	case "Material":
		return Materials, nil
	case "Contractor":
		return Contractors, nil
	default:
		return "", fmt.Errorf("invalid listingType %q", s)
	}
}

// ListingMeta carries the fields every listing kind shares.
type ListingMeta struct {
	ID         string `bson:"_id" json:"id"`
	Name       string `bson:"name" json:"name"`
	MerchantID string `bson:"merchantId" json:"merchantId"`
}

// Equipment is a rentable machine listing.
type Equipment struct {
	ListingMeta `bson:",inline"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Rate        float64 `bson:"rate" json:"rate"`
	RateType    string  `bson:"rateType,omitempty" json:"rateType,omitempty"`
}

// Material is a bulk-supply listing sold per unit.
type Material struct {
	ListingMeta   `bson:",inline"`
	Specs         string  `bson:"specs,omitempty" json:"specs,omitempty"`
	PricePerUnit  float64 `bson:"pricePerUnit" json:"pricePerUnit"`
	Unit          string  `bson:"unit,omitempty" json:"unit,omitempty"`
	StockQuantity int     `bson:"stockQuantity,omitempty" json:"stockQuantity,omitempty"`
}

// Contractor is a hire-for-work listing.
type Contractor struct {
	ListingMeta    `bson:",inline"`
	Bio            string  `bson:"bio,omitempty" json:"bio,omitempty"`
	Specialization string  `bson:"specialization,omitempty" json:"specialization,omitempty"`
	Rate           float64 `bson:"rate" json:"rate"`
}
