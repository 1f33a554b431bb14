package hrtoken

import (
	"context"
	"fmt"
	"time"

	"staffstream/models"
	"staffstream/services/tasks"
	"staffstream/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// tokenTTL is how long a registration invitation stays redeemable.
const tokenTTL = 3 * time.Hour

func (s *DefaultTokenService) registrationLink(tokenValue string) string {
	return fmt.Sprintf("%s/register?token=%s", s.FrontendURL, tokenValue)
}

// Issue generates a token bound to (email, name), valid for 3 hours, and
// emails the registration link.
func (s *DefaultTokenService) Issue(email, name string) (*models.RegistrationToken, error) {
	if email == "" || name == "" {
		return nil, utils.ValidationError("Email and name are required")
	}

	token := &models.RegistrationToken{
		ID:        uuid.New().String(),
		Token:     uuid.New().String(),
		Email:     email,
		Name:      name,
		ExpiresAt: time.Now().Add(tokenTTL),
		Status:    models.TokenStatusPending,
	}

	if err := s.Repo.Create(token); err != nil {
		return nil, utils.UpstreamError("Failed to create registration token", err)
	}

	msg := notificationEmail(token, s.registrationLink(token.Token), false)
	if err := s.Notifier.Send(context.Background(), msg); err != nil {
		return nil, utils.UpstreamError("Failed to send registration email", err)
	}

	utils.GetLogger().Info("Registration token issued",
		zap.String("email", email), zap.Time("expiresAt", token.ExpiresAt))
	return token, nil
}

// Validate checks a token value against the registering email. Each failure
// mode gets its own message; all render as a credential error.
func (s *DefaultTokenService) Validate(tokenValue, email string) (*models.RegistrationToken, error) {
	token, err := s.Repo.GetByToken(tokenValue)
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch registration token", err)
	}
	if token == nil {
		return nil, utils.AuthError("Invalid registration token")
	}
	if time.Now().After(token.ExpiresAt) {
		return nil, utils.AuthError("Registration token has expired")
	}
	if token.Status == models.TokenStatusRegistered {
		return nil, utils.AuthError("Registration token has already been used")
	}
	if token.Email != email {
		return nil, utils.AuthError("Email does not match the registration token")
	}
	return token, nil
}

// Consume flips a pending token to registered.
func (s *DefaultTokenService) Consume(tokenID string) error {
	if err := s.Repo.MarkRegistered(tokenID); err != nil {
		return utils.UpstreamError("Failed to consume registration token", err)
	}
	return nil
}

// History returns the full token history, newest first.
func (s *DefaultTokenService) History() ([]models.RegistrationToken, error) {
	tokens, err := s.Repo.ListAll()
	if err != nil {
		return nil, utils.UpstreamError("Failed to fetch token history", err)
	}
	return tokens, nil
}

// Remind enqueues a reminder email for an unredeemed invitation.
func (s *DefaultTokenService) Remind(tokenID string) error {
	token, err := s.Repo.GetByID(tokenID)
	if err != nil {
		return utils.UpstreamError("Failed to fetch registration token", err)
	}
	if token == nil {
		return utils.NotFoundError("Registration token not found")
	}
	if token.Status == models.TokenStatusRegistered {
		return utils.ConflictError("Registration already completed")
	}

	task, err := tasks.NewTokenReminderTask(tokenID)
	if err != nil {
		return utils.UpstreamError("Failed to build reminder task", err)
	}
	if _, err := s.Tasks.Enqueue(task); err != nil {
		return utils.UpstreamError("Failed to enqueue reminder", err)
	}
	return nil
}

// DeliverReminder sends the reminder email from the queue worker.
func (s *DefaultTokenService) DeliverReminder(tokenID string) error {
	token, err := s.Repo.GetByID(tokenID)
	if err != nil {
		return err
	}
	if token == nil || token.Status == models.TokenStatusRegistered {
		// Redeemed or deleted since the reminder was queued; nothing to do.
		return nil
	}

	msg := notificationEmail(token, s.registrationLink(token.Token), true)
	return s.Notifier.Send(context.Background(), msg)
}
