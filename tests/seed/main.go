package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"buildlanka/config"
	"buildlanka/database"
	"buildlanka/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Seeds the listings collection with a demo catalog of construction
// vehicles and building materials across several districts.
func main() {
	config.LoadConfig()
	database.InitDB()
	coll := database.Collection("listings")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear listings collection: %v", err)
	}

	listings := append(vehicleListings(), materialListings()...)

	docs := make([]interface{}, 0, len(listings))
	for i := range listings {
		listings[i].ID = uuid.New().String()
		if err := listings[i].Validate(); err != nil {
			log.Fatalf("Invalid seed listing %q: %v", listings[i].Name, err)
		}
		docs = append(docs, listings[i])
	}

	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert seed listings: %v", err)
	}
	fmt.Printf("Seeded %d listings (%d vehicles, %d materials)\n",
		len(docs), len(vehicleListings()), len(materialListings()))
}

func vehicle(name, desc, category string, sup models.Supplier, perHour, perDay float64, specs ...string) models.Listing {
	return models.Listing{
		Kind:        models.KindVehicle,
		Name:        name,
		Description: desc,
		Category:    category,
		Available:   true,
		Supplier:    sup,
		Vehicle: &models.VehicleDetails{
			PricePerHour: perHour,
			PricePerDay:  perDay,
			Specs:        specs,
		},
	}
}

func material(name, desc, category string, sup models.Supplier, perUnit float64, unit models.MaterialUnit) models.Listing {
	return models.Listing{
		Kind:        models.KindMaterial,
		Name:        name,
		Description: desc,
		Category:    category,
		Available:   true,
		Supplier:    sup,
		Material: &models.MaterialDetails{
			PricePerUnit: perUnit,
			Unit:         unit,
		},
	}
}

func vehicleListings() []models.Listing {
	lankaMachinery := models.Supplier{
		Name: "Lanka Machinery Hire", Location: "Maharagama", District: "Colombo",
		Phone: "+94771234501", Rating: 4.7, CompletedJobs: 182,
	}
	kandyEquip := models.Supplier{
		Name: "Kandy Equipment Rentals", Location: "Peradeniya", District: "Kandy",
		Phone: "+94771234502", Rating: 4.4, CompletedJobs: 96,
	}
	southernHeavy := models.Supplier{
		Name: "Southern Heavy Works", Location: "Karapitiya", District: "Galle",
		Phone: "+94771234503", Rating: 4.2, CompletedJobs: 64,
	}

	return []models.Listing{
		vehicle("JCB 3CX Backhoe Loader",
			"Versatile backhoe loader suitable for excavation and loading work on tight sites.",
			"Backhoe Loader", lankaMachinery, 4500, 32000, "1.1m3 bucket", "4WD", "Operator included"),
		vehicle("CAT 320 Excavator",
			"20-ton hydraulic excavator for large-scale excavation and demolition.",
			"Excavator", lankaMachinery, 8500, 60000, "20 ton", "Long reach boom"),
		vehicle("Tata 1615 Tipper",
			"10-cube tipper truck for soil, sand and aggregate transport island-wide.",
			"Tipper Truck", kandyEquip, 3000, 22000, "10 cube", "Island-wide"),
		vehicle("Bomag Road Roller",
			"Vibratory roller for road base and asphalt compaction.",
			"Roller", kandyEquip, 5000, 35000, "11 ton", "Smooth drum"),
		vehicle("Concrete Boom Pump 36m",
			"Truck-mounted boom pump for high-rise concrete placement.",
			"Concrete Pump", southernHeavy, 12000, 85000, "36m boom", "Crew included"),
		vehicle("Mobile Crane 25T",
			"25-ton mobile crane with certified operator for lifting and rigging work.",
			"Crane", southernHeavy, 10000, 70000, "25 ton", "Certified operator"),
	}
}

func materialListings() []models.Listing {
	riverSand := models.Supplier{
		Name: "Mahaweli Sand Suppliers", Location: "Manampitiya", District: "Polonnaruwa",
		Phone: "+94771234504", Rating: 4.6, CompletedJobs: 240,
	}
	metalCrusher := models.Supplier{
		Name: "Ratnapura Metal Crushers", Location: "Kuruwita", District: "Ratnapura",
		Phone: "+94771234505", Rating: 4.3, CompletedJobs: 150,
	}
	brickWorks := models.Supplier{
		Name: "Dankotuwa Brick Works", Location: "Dankotuwa", District: "Puttalam",
		Phone: "+94771234506", Rating: 4.1, CompletedJobs: 88,
	}

	return []models.Listing{
		material("Washed River Sand",
			"Clean washed river sand for concrete and masonry work, delivered by the cube.",
			"Sand", riverSand, 16500, models.UnitCubicMeter),
		material("Sea Sand (Washed)",
			"Offshore washed sand approved for general construction use.",
			"Sand", riverSand, 12000, models.UnitCubicMeter),
		material("3/4 Inch Crushed Metal",
			"Crushed aggregate for reinforced concrete, crusher-run quality.",
			"Aggregate", metalCrusher, 13500, models.UnitCubicMeter),
		material("Quarry Dust",
			"Fine quarry dust suitable for paving and block work.",
			"Aggregate", metalCrusher, 8000, models.UnitCubicMeter),
		material("Engineering Bricks",
			"Kiln-fired clay bricks, load-bearing grade.",
			"Bricks", brickWorks, 28000, models.UnitPer1000Pieces),
		material("Cement Blocks 6 Inch",
			"Machine-pressed hollow cement blocks for wall construction.",
			"Blocks", brickWorks, 95000, models.UnitPer1000Pieces),
	}
}
