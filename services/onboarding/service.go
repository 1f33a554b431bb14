package onboarding

import (
	"staffstream/models"
	"staffstream/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// workAuthF1 is the work-authorization type that requires staged visa
// document tracking.
const workAuthF1 = "F1"

// optReceiptDocType is the onboarding document bridged into the visa
// workflow when an F1 application is approved.
const optReceiptDocType = "opt_receipt"

// GetApplication returns a user's application.
func (s *DefaultOnboardingService) GetApplication(userID string) (*models.OnboardingApplication, error) {
	app, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch onboarding application", err)
	}
	if app == nil {
		return nil, utils.NotFoundError("Onboarding application not found")
	}
	return app, nil
}

// GetApplicationStatus returns only the review status of a user's application.
func (s *DefaultOnboardingService) GetApplicationStatus(userID string) (models.ApplicationStatus, error) {
	app, err := s.GetApplication(userID)
	if err != nil {
		return "", err
	}
	return app.Status, nil
}

// SubmitApplication creates a user's application, or replaces a reviewed one.
// The application ID survives a replace; the review status survives too
// unless the reset-on-resubmit policy is enabled.
func (s *DefaultOnboardingService) SubmitApplication(userID string, submission *models.OnboardingApplication) (*models.OnboardingApplication, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch onboarding application", err)
	}

	if existing == nil {
		submission.ID = uuid.New().String()
		submission.UserID = userID
		submission.Status = models.AppStatusPending
		submission.RejectionFeedback = ""
		if err := s.Repo.Create(submission); err != nil {
			return nil, utils.UpstreamError("Failed to create onboarding application", err)
		}
		logger.Info("Onboarding application created", zap.String("userId", userID))
		return submission, nil
	}

	if existing.Status == models.AppStatusPending {
		return nil, utils.ConflictError("Application already exists")
	}

	// Replace: the submission takes over every field except identity and,
	// unless the policy says otherwise, the review status.
	submission.ID = existing.ID
	submission.UserID = userID
	submission.CreatedAt = existing.CreatedAt
	if s.ResetOnResubmit {
		submission.Status = models.AppStatusPending
		submission.RejectionFeedback = ""
	} else {
		submission.Status = existing.Status
	}

	if err := s.Repo.Replace(submission); err != nil {
		return nil, utils.UpstreamError("Failed to replace onboarding application", err)
	}
	logger.Info("Onboarding application replaced",
		zap.String("userId", userID), zap.String("status", string(submission.Status)))
	return submission, nil
}

// ListApplications returns applications for the HR dashboard.
func (s *DefaultOnboardingService) ListApplications(status models.ApplicationStatus) ([]models.OnboardingApplication, error) {
	apps, err := s.Repo.ListByStatus(status)
	if err != nil {
		return nil, utils.UpstreamError("Failed to list onboarding applications", err)
	}
	return apps, nil
}

// ApproveApplication approves an application. For F1 employees the newest
// OPT Receipt document seeds the visa workflow before the status flips.
func (s *DefaultOnboardingService) ApproveApplication(applicationID string) (*models.OnboardingApplication, error) {
	app, err := s.Repo.GetByID(applicationID)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch onboarding application", err)
	}
	if app == nil {
		return nil, utils.NotFoundError("Application not found")
	}

	if app.CitizenshipStatus.WorkAuthorizationType == workAuthF1 {
		receipt := app.NewestDocumentOfType(optReceiptDocType)
		if receipt == nil {
			return nil, utils.ValidationError("F1 applications require an OPT Receipt document before approval")
		}
		if err := s.Visa.SeedOPTReceipt(app.UserID, receipt.FileURL); err != nil {
			return nil, err
		}
	}

	if err := s.Repo.UpdateStatus(applicationID, models.AppStatusApproved, ""); err != nil {
		return nil, utils.UpstreamError("Failed to update application status", err)
	}
	app.Status = models.AppStatusApproved
	app.RejectionFeedback = ""

	utils.GetLogger().Info("Onboarding application approved", zap.String("applicationId", applicationID))
	return app, nil
}

// RejectApplication rejects an application with mandatory feedback.
func (s *DefaultOnboardingService) RejectApplication(applicationID, feedback string) (*models.OnboardingApplication, error) {
	if feedback == "" {
		return nil, utils.ValidationError("Feedback is required to reject an application")
	}

	app, err := s.Repo.GetByID(applicationID)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch onboarding application", err)
	}
	if app == nil {
		return nil, utils.NotFoundError("Application not found")
	}

	if err := s.Repo.UpdateStatus(applicationID, models.AppStatusRejected, feedback); err != nil {
		return nil, utils.UpstreamError("Failed to update application status", err)
	}
	app.Status = models.AppStatusRejected
	app.RejectionFeedback = feedback

	utils.GetLogger().Info("Onboarding application rejected", zap.String("applicationId", applicationID))
	return app, nil
}
