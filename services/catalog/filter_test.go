package catalog_test

import (
	"reflect"
	"testing"

	"buildlanka/models"
	"buildlanka/services/catalog"
)

func sampleListings() []models.Listing {
	return []models.Listing{
		{
			ID: "v1", Kind: models.KindVehicle, Name: "JCB 3CX Backhoe Loader",
			Description: "Backhoe loader with operator, fuel included", Category: "Backhoe Loader",
			Available: true,
			Supplier:  models.Supplier{Name: "Lanka Heavy Machinery", District: "Colombo", Phone: "+94 77 123 4567", Rating: 4.5, CompletedJobs: 120},
			Vehicle:   &models.VehicleDetails{PricePerHour: 4500, PricePerDay: 32000, Specs: []string{"4WD", "AC cab"}},
		},
		{
			ID: "v2", Kind: models.KindVehicle, Name: "CAT 320 Excavator",
			Description: "20-ton excavator for site clearing", Category: "Excavator",
			Available: true,
			Supplier:  models.Supplier{Name: "Kandy Construction Equipment", District: "Kandy", Phone: "0712345678", Rating: 4.8, CompletedJobs: 210},
			Vehicle:   &models.VehicleDetails{PricePerHour: 8000, PricePerDay: 56000},
		},
		{
			ID: "m1", Kind: models.KindMaterial, Name: "Premium River Sand",
			Description: "Washed river sand for concrete work", Category: "Sand",
			Available: true,
			Supplier:  models.Supplier{Name: "Gampaha Sand Suppliers", District: "Gampaha", Phone: "+94770000001", Rating: 4.2, CompletedJobs: 340},
			Material:  &models.MaterialDetails{PricePerUnit: 15000, Unit: models.UnitCubicMeter},
		},
		{
			ID: "m2", Kind: models.KindMaterial, Name: "Engineering Bricks",
			Description: "Kiln-fired clay bricks", Category: "Bricks",
			Available: true,
			Supplier:  models.Supplier{Name: "Colombo Clay Works", District: "Colombo", Phone: "0770000002", Rating: 3.9, CompletedJobs: 95},
			Material:  &models.MaterialDetails{PricePerUnit: 28000, Unit: models.UnitPer1000Pieces},
		},
	}
}

func ids(listings []models.Listing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFilterEmptySelectionIsIdentity(t *testing.T) {
	listings := sampleListings()
	got := catalog.Filter(listings, models.FilterSelection{})
	if !reflect.DeepEqual(ids(got), ids(listings)) {
		t.Fatalf("empty selection changed the catalog: got %v", ids(got))
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	got := catalog.Filter(nil, models.FilterSelection{Category: "Sand", District: "Colombo", Query: "x"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
}

func TestFilterByCategory(t *testing.T) {
	got := catalog.Filter(sampleListings(), models.FilterSelection{Category: "Sand"})
	if !reflect.DeepEqual(ids(got), []string{"m1"}) {
		t.Fatalf("category filter: got %v", ids(got))
	}
	// Exact equality, no case folding.
	got = catalog.Filter(sampleListings(), models.FilterSelection{Category: "sand"})
	if len(got) != 0 {
		t.Fatalf("category match must be case-sensitive, got %v", ids(got))
	}
}

func TestFilterByDistrict(t *testing.T) {
	got := catalog.Filter(sampleListings(), models.FilterSelection{District: "Colombo"})
	if !reflect.DeepEqual(ids(got), []string{"v1", "m2"}) {
		t.Fatalf("district filter: got %v", ids(got))
	}
}

func TestFilterQueryCaseInsensitiveSubstring(t *testing.T) {
	listings := sampleListings()
	for _, q := range []string{"river", "RIVER", "Riv"} {
		got := catalog.Filter(listings, models.FilterSelection{Query: q})
		found := false
		for _, l := range got {
			if l.ID == "m1" {
				found = true
			}
		}
		if !found {
			t.Fatalf("query %q should match Premium River Sand, got %v", q, ids(got))
		}
	}
	got := catalog.Filter(listings, models.FilterSelection{Query: "rivers"})
	for _, l := range got {
		if l.ID == "m1" {
			t.Fatalf("query \"rivers\" must not match Premium River Sand")
		}
	}
}

func TestFilterQuerySearchesSupplierName(t *testing.T) {
	got := catalog.Filter(sampleListings(), models.FilterSelection{Query: "kandy"})
	if !reflect.DeepEqual(ids(got), []string{"v2"}) {
		t.Fatalf("supplier-name query: got %v", ids(got))
	}
}

func TestFilterIsConjunctive(t *testing.T) {
	listings := sampleListings()
	sel := models.FilterSelection{Category: "Bricks", District: "Colombo", Query: "clay"}

	combined := catalog.Filter(listings, sel)

	inAll := func(id string) bool {
		for _, single := range []models.FilterSelection{
			{Category: sel.Category},
			{District: sel.District},
			{Query: sel.Query},
		} {
			present := false
			for _, l := range catalog.Filter(listings, single) {
				if l.ID == id {
					present = true
				}
			}
			if !present {
				return false
			}
		}
		return true
	}

	for _, l := range listings {
		expected := inAll(l.ID)
		got := false
		for _, m := range combined {
			if m.ID == l.ID {
				got = true
			}
		}
		if expected != got {
			t.Fatalf("listing %s: combined filter disagrees with facet intersection", l.ID)
		}
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got := catalog.Filter(sampleListings(), models.FilterSelection{District: "Colombo"})
	if !reflect.DeepEqual(ids(got), []string{"v1", "m2"}) {
		t.Fatalf("relative order not preserved: got %v", ids(got))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	listings := sampleListings()
	before := ids(listings)
	catalog.Filter(listings, models.FilterSelection{Category: "Sand", Query: "sand"})
	if !reflect.DeepEqual(ids(listings), before) {
		t.Fatalf("filter mutated its input")
	}
}

func TestCategoriesDistinctFirstSeenOrder(t *testing.T) {
	listings := append(sampleListings(), sampleListings()...)
	got := catalog.Categories(listings)
	want := []string{"Backhoe Loader", "Excavator", "Sand", "Bricks"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("categories: got %v want %v", got, want)
	}
}
