package notification

import "context"

// Email is one outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Notifier sends templated email notifications.
type Notifier interface {
	Send(ctx context.Context, email Email) error
}
