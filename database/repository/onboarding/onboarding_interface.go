package onboardingRepo

import "staffstream/models"

// OnboardingRepository defines methods for onboarding-application data access.
type OnboardingRepository interface {
	// GetByUserID retrieves a user's application. Returns nil when absent.
	GetByUserID(userID string) (*models.OnboardingApplication, error)
	// GetByID retrieves an application by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.OnboardingApplication, error)
	// Create inserts a new application record.
	Create(app *models.OnboardingApplication) error
	// Replace overwrites an existing application document, keyed by its ID.
	Replace(app *models.OnboardingApplication) error
	// UpdateStatus sets the review status and rejection feedback.
	UpdateStatus(id string, status models.ApplicationStatus, feedback string) error
	// ListByStatus retrieves applications filtered by status; pass "" for all.
	ListByStatus(status models.ApplicationStatus) ([]models.OnboardingApplication, error)
}
