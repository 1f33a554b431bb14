package notification

import (
	"context"
	"fmt"

	"staffstream/utils"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// ResendNotifier sends email through the Resend API. Sends are synchronous
// and never retried; a failure surfaces to the caller.
type ResendNotifier struct {
	client    *resend.Client
	fromEmail string
}

// NewResendNotifier creates a Notifier backed by Resend.
func NewResendNotifier(apiKey, fromEmail string) *ResendNotifier {
	return &ResendNotifier{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
	}
}

// Send delivers one email.
func (n *ResendNotifier) Send(ctx context.Context, email Email) error {
	params := &resend.SendEmailRequest{
		From:    n.fromEmail,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	}

	if _, err := n.client.Emails.SendWithContext(ctx, params); err != nil {
		utils.GetLogger().Error("Failed to send email",
			zap.String("to", email.To), zap.String("subject", email.Subject), zap.Error(err))
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}

// RegistrationEmail builds the invitation message containing the
// registration link. The link expires in 3 hours.
func RegistrationEmail(to, name, link string) Email {
	return Email{
		To:      to,
		Subject: "Welcome to Our Company - Complete Your Registration",
		HTML: fmt.Sprintf(`
			<h1>Welcome %s!</h1>
			<p>Please click the link below to complete your registration:</p>
			<a href="%s">Complete Registration</a>
			<p>This link will expire in 3 hours.</p>
		`, name, link),
	}
}

// ReminderEmail builds the follow-up message for an unredeemed invitation.
func ReminderEmail(to, name, link string) Email {
	return Email{
		To:      to,
		Subject: "Reminder: Complete Your Registration",
		HTML: fmt.Sprintf(`
			<h1>Hi %s,</h1>
			<p>Your registration is still incomplete. Use the link below to finish:</p>
			<a href="%s">Complete Registration</a>
		`, name, link),
	}
}
