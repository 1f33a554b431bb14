package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeTokenReminder = "token:reminder"

// TokenReminderPayload identifies the invitation a reminder refers to.
type TokenReminderPayload struct {
	TokenID string `json:"tokenId"`
}

// NewTokenReminderTask builds the queue task for a registration reminder.
func NewTokenReminderTask(tokenID string) (*asynq.Task, error) {
	b, err := json.Marshal(TokenReminderPayload{TokenID: tokenID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeTokenReminder, b), nil
}
