package handlers

import (
	"net/http"

	"staffstream/models"
	"staffstream/services/hrtoken"
	"staffstream/services/onboarding"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
)

// HRHandler exposes the HR dashboard endpoints: registration-token
// management and onboarding application review.
type HRHandler struct {
	Tokens     hrtoken.TokenService
	Onboarding onboarding.OnboardingService
}

// NewHRHandler creates a new HRHandler instance.
func NewHRHandler(tokens hrtoken.TokenService, onboardingSvc onboarding.OnboardingService) *HRHandler {
	return &HRHandler{Tokens: tokens, Onboarding: onboardingSvc}
}

// GenerateTokenHandler handles POST /api/hr/generate-token.
func (h *HRHandler) GenerateTokenHandler(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Email and name are required")
		return
	}

	if _, err := h.Tokens.Issue(req.Email, req.Name); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Registration token generated and email sent successfully"})
}

// TokenHistoryHandler handles GET /api/hr/token-history.
func (h *HRHandler) TokenHistoryHandler(c *gin.Context) {
	tokens, err := h.Tokens.History()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokens)
}

// RemindTokenHandler handles POST /api/hr/token/:id/remind.
func (h *HRHandler) RemindTokenHandler(c *gin.Context) {
	if err := h.Tokens.Remind(c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder queued"})
}

// GetApplicationsHandler handles GET /api/hr, optionally filtered by the
// "status" query parameter.
func (h *HRHandler) GetApplicationsHandler(c *gin.Context) {
	status := models.ApplicationStatus(c.Query("status"))
	apps, err := h.Onboarding.ListApplications(status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ApproveApplicationHandler handles POST /api/hr/:id/approve.
func (h *HRHandler) ApproveApplicationHandler(c *gin.Context) {
	app, err := h.Onboarding.ApproveApplication(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

// RejectApplicationHandler handles POST /api/hr/:id/reject.
func (h *HRHandler) RejectApplicationHandler(c *gin.Context) {
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Feedback is required")
		return
	}

	app, err := h.Onboarding.RejectApplication(c.Param("id"), req.Feedback)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
