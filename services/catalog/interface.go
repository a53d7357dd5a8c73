package catalog

import (
	listingRepo "buildlanka/database/repository/listing"
	"buildlanka/models"

	"github.com/go-redis/redis/v8"
)

// CatalogService exposes the browse surface of the marketplace.
type CatalogService interface {
	// Browse returns the listings of one variant matching the selection,
	// in catalog order.
	Browse(kind models.ListingKind, sel models.FilterSelection) ([]models.Listing, error)
	// GetListing returns a single listing, or nil when absent.
	GetListing(id string) (*models.Listing, error)
	// ListCategories returns the selectable category facet values for a variant.
	ListCategories(kind models.ListingKind) ([]string, error)
	// ListDistricts returns the fixed district facet values.
	ListDistricts() []string
}

// DefaultCatalogService is the production implementation. Catalog snapshots
// are cached in Redis; filtering always runs in memory over the full
// snapshot so each request re-filters reactively.
type DefaultCatalogService struct {
	Repo  listingRepo.ListingRepository
	Cache *redis.Client
}
