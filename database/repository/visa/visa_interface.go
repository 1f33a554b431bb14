package visaRepo

import "staffstream/models"

// VisaRepository defines methods for visa-application data access.
type VisaRepository interface {
	// GetByUserID retrieves a user's visa application. Returns nil when absent.
	GetByUserID(userID string) (*models.VisaApplication, error)
	// GetByID retrieves an application by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.VisaApplication, error)
	// Create inserts a new visa application record.
	Create(visa *models.VisaApplication) error
	// Save overwrites an existing visa application document, keyed by its ID.
	Save(visa *models.VisaApplication) error
	// ListAll retrieves every visa application.
	ListAll() ([]models.VisaApplication, error)
}
