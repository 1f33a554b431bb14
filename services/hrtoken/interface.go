package hrtoken

import (
	tokenRepo "staffstream/database/repository/token"
	"staffstream/models"
	"staffstream/services/notification"

	"github.com/hibiken/asynq"
)

// TokenService manages single-use, time-boxed, email-bound registration
// invitations.
type TokenService interface {
	// Issue generates a token bound to (email, name), valid for 3 hours,
	// and emails the registration link. The email send is not retried.
	Issue(email, name string) (*models.RegistrationToken, error)
	// Validate checks a token value against the registering email and
	// returns the record when it is pending, unexpired, and email-matched.
	Validate(tokenValue, email string) (*models.RegistrationToken, error)
	// Consume flips a pending token to registered; the flip is one-way.
	Consume(tokenID string) error
	// History returns the full token history, newest first.
	History() ([]models.RegistrationToken, error)
	// Remind enqueues a reminder email for an unredeemed invitation.
	Remind(tokenID string) error
	// DeliverReminder sends the reminder email. Called by the queue worker;
	// tokens that were redeemed in the meantime are skipped.
	DeliverReminder(tokenID string) error
}

// TaskEnqueuer is the slice of asynq.Client the service needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// DefaultTokenService is the production implementation.
type DefaultTokenService struct {
	Repo        tokenRepo.TokenRepository
	Notifier    notification.Notifier
	Tasks       TaskEnqueuer
	FrontendURL string
}
