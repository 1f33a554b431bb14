package auth

import (
	userRepo "staffstream/database/repository/user"
	"staffstream/models"
	"staffstream/services/hrtoken"
)

// AuthService handles account registration and credential verification.
type AuthService interface {
	// Register redeems a registration token and creates the user account.
	Register(tokenValue, username, email, password string) (*AuthResponse, error)
	// Login verifies a username/password pair and issues a bearer token.
	Login(username, password string) (*AuthResponse, error)
	// CurrentUser resolves the authenticated user.
	CurrentUser(userID string) (*models.User, error)
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Users  userRepo.UserRepository
	Tokens hrtoken.TokenService
}

// AuthResponse carries the issued bearer token and basic identity.
type AuthResponse struct {
	ID       string `json:"id"`
	Token    string `json:"token"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}
