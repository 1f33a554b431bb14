package auth

import (
	"time"

	"staffstream/models"
	"staffstream/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is the bearer-token lifetime.
const tokenDuration = 24 * time.Hour

// Register redeems a registration token and creates the user account. The
// token flips to registered only after the account exists.
func (s *DefaultAuthService) Register(tokenValue, username, email, password string) (*AuthResponse, error) {
	if tokenValue == "" || username == "" || email == "" || password == "" {
		return nil, utils.ValidationError("Token, username, email, and password are required")
	}

	regToken, err := s.Tokens.Validate(tokenValue, email)
	if err != nil {
		return nil, err
	}

	if existing, err := s.Users.GetByUsername(username); err != nil {
		return nil, utils.UpstreamError("Failed to check for existing user", err)
	} else if existing != nil {
		return nil, utils.ConflictError("User already exists")
	}
	if existing, err := s.Users.GetByEmail(email); err != nil {
		return nil, utils.UpstreamError("Failed to check for existing user", err)
	} else if existing != nil {
		return nil, utils.ConflictError("User already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.UpstreamError("Failed to hash password", err)
	}

	usr := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Users.Create(usr); err != nil {
		return nil, utils.UpstreamError("Failed to create user", err)
	}

	if err := s.Tokens.Consume(regToken.ID); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("User registered", zap.String("username", username))
	return s.issueToken(usr)
}

// Login verifies a username/password pair and issues a bearer token.
func (s *DefaultAuthService) Login(username, password string) (*AuthResponse, error) {
	if username == "" || password == "" {
		return nil, utils.ValidationError("Username and password are required")
	}

	usr, err := s.Users.GetByUsername(username)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch user", err)
	}
	if usr == nil {
		return nil, utils.AuthError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, utils.AuthError("Invalid credentials")
	}

	return s.issueToken(usr)
}

// CurrentUser resolves the authenticated user.
func (s *DefaultAuthService) CurrentUser(userID string) (*models.User, error) {
	usr, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch user", err)
	}
	if usr == nil {
		return nil, utils.AuthError("User not found")
	}
	return usr, nil
}

// issueToken signs a JWT for the user and records its hash so tokens can be
// revoked server-side.
func (s *DefaultAuthService) issueToken(usr *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenDuration)
	if err != nil {
		return nil, utils.UpstreamError("Failed to sign token", err)
	}
	if err := s.Users.UpdateTokenHash(usr.ID, utils.HashToken(token)); err != nil {
		return nil, utils.UpstreamError("Failed to store token hash", err)
	}

	return &AuthResponse{
		ID:       usr.ID,
		Token:    token,
		Username: usr.Username,
		Email:    usr.Email,
		IsAdmin:  usr.IsAdmin,
	}, nil
}
