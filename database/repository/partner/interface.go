package partnerRepo

import (
	"buildlanka/models"
)

// PartnerRepository defines methods for submitted-partner data access.
type PartnerRepository interface {
	// GetByID retrieves a partner by its unique ID.
	GetByID(id string) (*models.Partner, error)
	// GetByEmail retrieves a partner by its business email, or nil when absent.
	GetByEmail(email string) (*models.Partner, error)
	// ListByStatus returns all partners with the given review status.
	ListByStatus(status string) ([]models.Partner, error)
	// Create inserts a new partner record.
	Create(partner *models.Partner) error
	// UpdateStatus moves a partner to a new review status.
	UpdateStatus(id string, status string) error
	// Delete removes a partner record by its ID.
	Delete(id string) error
}
