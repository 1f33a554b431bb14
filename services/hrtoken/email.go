package hrtoken

import (
	"staffstream/models"
	"staffstream/services/notification"
)

func notificationEmail(t *models.RegistrationToken, link string, reminder bool) notification.Email {
	if reminder {
		return notification.ReminderEmail(t.Email, t.Name, link)
	}
	return notification.RegistrationEmail(t.Email, t.Name, link)
}
