package handlers

import (
	"net/http"

	"staffstream/models"
	"staffstream/services/onboarding"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler exposes the onboarding application endpoints.
type OnboardingHandler struct {
	Service onboarding.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler instance.
func NewOnboardingHandler(svc onboarding.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{Service: svc}
}

// GetApplicationHandler handles GET /api/onboarding/application.
func (h *OnboardingHandler) GetApplicationHandler(c *gin.Context) {
	app, err := h.Service.GetApplication(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// GetApplicationStatusHandler handles GET /api/onboarding/application/status.
func (h *OnboardingHandler) GetApplicationStatusHandler(c *gin.Context) {
	status, err := h.Service.GetApplicationStatus(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// SubmitApplicationHandler handles POST /api/onboarding/application.
func (h *OnboardingHandler) SubmitApplicationHandler(c *gin.Context) {
	var submission models.OnboardingApplication
	if err := c.ShouldBindJSON(&submission); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid application payload")
		return
	}

	app, err := h.Service.SubmitApplication(c.GetString("userID"), &submission)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// UpdateApplicationStatusHandler handles
// PUT /api/onboarding/application/:applicationId/status (HR only). The
// requested status dispatches to the approve or reject workflow.
func (h *OnboardingHandler) UpdateApplicationStatusHandler(c *gin.Context) {
	applicationID := c.Param("applicationId")

	var req struct {
		Status            models.ApplicationStatus `json:"status" binding:"required"`
		RejectionFeedback string                   `json:"rejectionFeedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Status is required")
		return
	}

	var (
		app *models.OnboardingApplication
		err error
	)
	switch req.Status {
	case models.AppStatusApproved:
		app, err = h.Service.ApproveApplication(applicationID)
	case models.AppStatusRejected:
		app, err = h.Service.RejectApplication(applicationID, req.RejectionFeedback)
	default:
		utils.JSONError(c, http.StatusBadRequest, "Status must be approved or rejected")
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
