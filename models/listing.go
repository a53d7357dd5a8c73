package models

import "fmt"

// ListingKind discriminates the two listing variants.
type ListingKind string

const (
	KindVehicle  ListingKind = "vehicle"
	KindMaterial ListingKind = "material"
)

// MaterialUnit is the unit-of-measure for material pricing.
type MaterialUnit string

const (
	UnitCubicMeter    MaterialUnit = "cubic_meter"
	UnitTon           MaterialUnit = "ton"
	UnitKg            MaterialUnit = "kg"
	UnitPer1000Pieces MaterialUnit = "per_1000_pieces"
)

// VehicleDetails holds the vehicle-only fields of a listing.
type VehicleDetails struct {
	PricePerHour float64  `bson:"pricePerHour" json:"pricePerHour"`
	PricePerDay  float64  `bson:"pricePerDay" json:"pricePerDay"`
	Specs        []string `bson:"specs,omitempty" json:"specs,omitempty"`
}

// MaterialDetails holds the material-only fields of a listing.
type MaterialDetails struct {
	PricePerUnit float64      `bson:"pricePerUnit" json:"pricePerUnit"`
	Unit         MaterialUnit `bson:"unit" json:"unit"`
}

// Listing is a catalog entry: either a construction vehicle for hire or a
// building material for sale. Kind selects which detail record is populated;
// callers switch on Kind rather than probing for fields.
type Listing struct {
	ID          string           `bson:"id" json:"id"`
	Kind        ListingKind      `bson:"kind" json:"kind"`
	Name        string           `bson:"name" json:"name"`
	Description string           `bson:"description" json:"description"`
	Category    string           `bson:"category" json:"category"`
	ImageURL    string           `bson:"imageUrl" json:"imageUrl,omitempty"`
	Available   bool             `bson:"available" json:"available"`
	Supplier    Supplier         `bson:"supplier" json:"supplier"`
	Vehicle     *VehicleDetails  `bson:"vehicle,omitempty" json:"vehicle,omitempty"`
	Material    *MaterialDetails `bson:"material,omitempty" json:"material,omitempty"`
}

// Validate checks that the listing's detail record matches its Kind.
func (l *Listing) Validate() error {
	switch l.Kind {
	case KindVehicle:
		if l.Vehicle == nil {
			return fmt.Errorf("vehicle listing %s is missing vehicle details", l.ID)
		}
		if l.Material != nil {
			return fmt.Errorf("vehicle listing %s carries material details", l.ID)
		}
	case KindMaterial:
		if l.Material == nil {
			return fmt.Errorf("material listing %s is missing material details", l.ID)
		}
		if l.Vehicle != nil {
			return fmt.Errorf("material listing %s carries vehicle details", l.ID)
		}
	default:
		return fmt.Errorf("listing %s has unknown kind %q", l.ID, l.Kind)
	}
	if !IsValidDistrict(l.Supplier.District) {
		return fmt.Errorf("listing %s has unknown district %q", l.ID, l.Supplier.District)
	}
	return nil
}
