package visa

import (
	"time"

	"staffstream/models"
	"staffstream/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetStatus returns the employee-facing view of the caller's application.
func (s *DefaultVisaService) GetStatus(userID string) (*models.VisaStatusView, error) {
	v, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch visa application", err)
	}
	if v == nil {
		return nil, utils.NotFoundError("No visa application found")
	}

	return &models.VisaStatusView{
		CurrentStep: v.CurrentStep,
		Documents:   v.Documents,
		Message:     StatusMessage(v),
	}, nil
}

// SubmitDocument appends a pending document for the current step, creating
// the application lazily on first upload. Only one document per step may
// await review at a time.
func (s *DefaultVisaService) SubmitDocument(userID, fileURL string) (*models.VisaApplication, error) {
	logger := utils.GetLogger()

	v, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch visa application", err)
	}
	if v == nil {
		v = &models.VisaApplication{
			ID:          uuid.New().String(),
			UserID:      userID,
			CurrentStep: models.DocTypeOPTReceipt,
			Documents:   []models.VisaDocument{},
		}
		if err := s.Repo.Create(v); err != nil {
			return nil, utils.UpstreamError("Failed to create visa application", err)
		}
		logger.Info("Created visa application", zap.String("userId", userID))
	}

	for i := range v.Documents {
		d := &v.Documents[i]
		if d.Type == v.CurrentStep && d.Status == models.DocStatusPending {
			return nil, utils.ConflictError("Previous document is still pending approval")
		}
	}

	v.Documents = append(v.Documents, models.VisaDocument{
		Type:       v.CurrentStep,
		FileURL:    fileURL,
		Status:     models.DocStatusPending,
		Feedback:   "",
		UploadedAt: time.Now(),
	})

	if err := s.Repo.Save(v); err != nil {
		return nil, utils.UpstreamError("Failed to save visa document", err)
	}
	logger.Info("Visa document submitted",
		zap.String("userId", userID), zap.String("step", string(v.CurrentStep)))
	return v, nil
}

// SeedOPTReceipt starts (or restarts at OPT Receipt) a user's visa workflow
// with a pending OPT Receipt document carrying the given file.
func (s *DefaultVisaService) SeedOPTReceipt(userID, fileURL string) error {
	v, err := s.Repo.GetByUserID(userID)
	if err != nil {
		return utils.UpstreamError("Failed to fetch visa application", err)
	}

	created := false
	if v == nil {
		v = &models.VisaApplication{
			ID:        uuid.New().String(),
			UserID:    userID,
			Documents: []models.VisaDocument{},
		}
		created = true
	}

	v.CurrentStep = models.DocTypeOPTReceipt
	v.Documents = append(v.Documents, models.VisaDocument{
		Type:       models.DocTypeOPTReceipt,
		FileURL:    fileURL,
		Status:     models.DocStatusPending,
		Feedback:   "",
		UploadedAt: time.Now(),
	})

	if created {
		if err := s.Repo.Create(v); err != nil {
			return utils.UpstreamError("Failed to create visa application", err)
		}
		return nil
	}
	if err := s.Repo.Save(v); err != nil {
		return utils.UpstreamError("Failed to save visa application", err)
	}
	return nil
}

// reviewable loads an application by ID and returns its latest document if
// that document is still awaiting review.
func (s *DefaultVisaService) reviewable(applicationID, action string) (*models.VisaApplication, *models.VisaDocument, error) {
	v, err := s.Repo.GetByID(applicationID)
	if err != nil {
		return nil, nil, utils.UpstreamError("Failed to fetch visa application", err)
	}
	if v == nil {
		return nil, nil, utils.NotFoundError("Visa application not found")
	}

	doc := v.LastDocument()
	if doc == nil {
		return nil, nil, utils.ValidationError("No document to " + action)
	}
	if doc.Status != models.DocStatusPending {
		return nil, nil, utils.ValidationError("Can only " + action + " documents with pending status")
	}
	return v, doc, nil
}

// Approve marks the latest pending document approved and advances the
// current step. I-20 has no successor; approving it is terminal.
func (s *DefaultVisaService) Approve(applicationID string) (*models.VisaApplication, error) {
	v, doc, err := s.reviewable(applicationID, "approve")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc.Status = models.DocStatusApproved
	doc.ReviewedAt = &now

	if next := NextStep(v.CurrentStep); next != "" {
		v.CurrentStep = next
	}

	if err := s.Repo.Save(v); err != nil {
		return nil, utils.UpstreamError("Failed to save visa application", err)
	}
	utils.GetLogger().Info("Visa document approved",
		zap.String("applicationId", applicationID), zap.String("currentStep", string(v.CurrentStep)))
	return v, nil
}

// Reject marks the latest pending document rejected with feedback. The
// current step does not change; the employee resubmits for the same step.
func (s *DefaultVisaService) Reject(applicationID, feedback string) (*models.VisaApplication, error) {
	if feedback == "" {
		return nil, utils.ValidationError("Feedback is required to reject a document")
	}

	v, doc, err := s.reviewable(applicationID, "reject")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	doc.Status = models.DocStatusRejected
	doc.Feedback = feedback
	doc.ReviewedAt = &now

	if err := s.Repo.Save(v); err != nil {
		return nil, utils.UpstreamError("Failed to save visa application", err)
	}
	utils.GetLogger().Info("Visa document rejected",
		zap.String("applicationId", applicationID), zap.String("step", string(v.CurrentStep)))
	return v, nil
}

// InProgressApplications lists applications not yet approved through I-20.
func (s *DefaultVisaService) InProgressApplications() ([]models.VisaApplicationView, error) {
	return s.listApplications(true)
}

// AllApplications lists every visa application with owner identity.
func (s *DefaultVisaService) AllApplications() ([]models.VisaApplicationView, error) {
	return s.listApplications(false)
}

func (s *DefaultVisaService) listApplications(inProgressOnly bool) ([]models.VisaApplicationView, error) {
	visas, err := s.Repo.ListAll()
	if err != nil {
		return nil, utils.UpstreamError("Failed to list visa applications", err)
	}

	views := make([]models.VisaApplicationView, 0, len(visas))
	for i := range visas {
		v := visas[i]
		if inProgressOnly && !InProgress(&v) {
			continue
		}
		view := models.VisaApplicationView{VisaApplication: v}
		if usr, err := s.Users.GetByIDWithProjection(v.UserID, bson.M{"username": 1, "email": 1}); err == nil && usr != nil {
			view.UserName = usr.Username
			view.UserEmail = usr.Email
		}
		views = append(views, view)
	}
	return views, nil
}
