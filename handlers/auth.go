package handlers

import (
	"net/http"

	"staffstream/services/auth"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, login, and identity endpoints.
type AuthHandler struct {
	AuthService auth.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: svc}
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		Token    string `json:"token" binding:"required"`
		Username string `json:"username" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Token, username, email, and password are required")
		return
	}

	resp, err := h.AuthService.Register(req.Token, req.Username, req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	resp, err := h.AuthService.Login(req.Username, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CurrentUserHandler handles GET /api/auth/me.
func (h *AuthHandler) CurrentUserHandler(c *gin.Context) {
	userID := c.GetString("userID")
	usr, err := h.AuthService.CurrentUser(userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}
