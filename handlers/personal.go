package handlers

import (
	"net/http"

	"staffstream/models"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
)

// GetPersonalInfoHandler handles GET /api/personal.
func (h *OnboardingHandler) GetPersonalInfoHandler(c *gin.Context) {
	info, err := h.Service.GetPersonalInfo(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpdatePersonalInfoHandler handles PUT /api/personal. Only the fields of
// PersonalInfo are mutable through this endpoint.
func (h *OnboardingHandler) UpdatePersonalInfoHandler(c *gin.Context) {
	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid personal information payload")
		return
	}

	app, err := h.Service.UpdatePersonalInfo(c.GetString("userID"), info)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
