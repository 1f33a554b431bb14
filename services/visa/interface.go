package visa

import (
	userRepo "staffstream/database/repository/user"
	visaRepo "staffstream/database/repository/visa"
	"staffstream/models"
)

// VisaService owns the ordered four-stage document approval workflow.
type VisaService interface {
	// GetStatus returns the employee-facing view of the caller's application.
	GetStatus(userID string) (*models.VisaStatusView, error)
	// SubmitDocument appends a pending document for the current step,
	// creating the application lazily on first upload.
	SubmitDocument(userID, fileURL string) (*models.VisaApplication, error)
	// SeedOPTReceipt starts (or restarts at OPT Receipt) a user's visa
	// workflow with a pending OPT Receipt document. Used when HR approves
	// an F1 onboarding application.
	SeedOPTReceipt(userID, fileURL string) error
	// Approve marks the latest pending document approved and advances the
	// current step; I-20 is terminal.
	Approve(applicationID string) (*models.VisaApplication, error)
	// Reject marks the latest pending document rejected with feedback. The
	// current step does not change.
	Reject(applicationID, feedback string) (*models.VisaApplication, error)
	// InProgressApplications lists applications not yet approved through I-20.
	InProgressApplications() ([]models.VisaApplicationView, error)
	// AllApplications lists every visa application with owner identity.
	AllApplications() ([]models.VisaApplicationView, error)
}

// DefaultVisaService is the production implementation.
type DefaultVisaService struct {
	Repo  visaRepo.VisaRepository
	Users userRepo.UserRepository
}
