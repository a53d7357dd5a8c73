package listingRepo

import (
	"buildlanka/models"
)

// ListingRepository defines methods for catalog data access.
type ListingRepository interface {
	// GetByID retrieves a listing by its unique ID.
	GetByID(id string) (*models.Listing, error)
	// GetAll retrieves the full catalog.
	GetAll() ([]models.Listing, error)
	// GetByKind retrieves every listing of one variant, in insertion order.
	GetByKind(kind models.ListingKind) ([]models.Listing, error)
	// Create inserts a new listing record.
	Create(listing *models.Listing) error
	// Update modifies an existing listing record.
	Update(listing *models.Listing) error
	// Delete removes a listing record by its ID.
	Delete(id string) error
	// SetAvailability flips the availability flag on a listing.
	SetAvailability(id string, available bool) error
}
