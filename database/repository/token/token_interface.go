package tokenRepo

import "staffstream/models"

// TokenRepository defines methods for registration-token data access.
type TokenRepository interface {
	// Create inserts a new registration token record.
	Create(token *models.RegistrationToken) error
	// GetByToken retrieves a token by its opaque value. Returns nil when absent.
	GetByToken(token string) (*models.RegistrationToken, error)
	// GetByID retrieves a token by its unique ID. Returns nil when absent.
	GetByID(id string) (*models.RegistrationToken, error)
	// MarkRegistered flips a pending token to registered. The flip is one-way.
	MarkRegistered(id string) error
	// ListAll returns the full token history, newest first.
	ListAll() ([]models.RegistrationToken, error)
}
