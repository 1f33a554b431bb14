package onboarding

import (
	onboardingRepo "staffstream/database/repository/onboarding"
	"staffstream/models"
	"staffstream/services/visa"
)

// OnboardingService handles employee onboarding applications and their
// three-state review workflow.
type OnboardingService interface {
	// GetApplication returns a user's application.
	GetApplication(userID string) (*models.OnboardingApplication, error)
	// GetApplicationStatus returns only the review status of a user's application.
	GetApplicationStatus(userID string) (models.ApplicationStatus, error)
	// SubmitApplication creates a user's application, or replaces a reviewed
	// one. A second submission while one is pending is rejected.
	SubmitApplication(userID string, submission *models.OnboardingApplication) (*models.OnboardingApplication, error)
	// ListApplications returns applications for the HR dashboard, optionally
	// filtered by status ("" for all).
	ListApplications(status models.ApplicationStatus) ([]models.OnboardingApplication, error)
	// ApproveApplication approves an application. F1 applications are bridged
	// into the visa workflow with their newest OPT Receipt document.
	ApproveApplication(applicationID string) (*models.OnboardingApplication, error)
	// RejectApplication rejects an application with mandatory feedback.
	RejectApplication(applicationID, feedback string) (*models.OnboardingApplication, error)
	// GetPersonalInfo returns the employee-editable subset of the application.
	GetPersonalInfo(userID string) (*models.PersonalInfo, error)
	// UpdatePersonalInfo merges non-empty fields into the application.
	UpdatePersonalInfo(userID string, info models.PersonalInfo) (*models.OnboardingApplication, error)
}

// DefaultOnboardingService is the production implementation.
type DefaultOnboardingService struct {
	Repo onboardingRepo.OnboardingRepository
	Visa visa.VisaService
	// ResetOnResubmit controls whether replacing a reviewed application
	// resets its status to pending. Off by default.
	ResetOnResubmit bool
}
