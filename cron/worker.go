package cron

import (
	"context"
	"encoding/json"
	"log"

	"staffstream/config"
	"staffstream/services/hrtoken"
	"staffstream/services/tasks"

	"github.com/hibiken/asynq"
)

// NewQueueClient creates the asynq client used to enqueue reminder tasks.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(tokenSvc hrtoken.TokenService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeTokenReminder, handleTokenReminder(tokenSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[ReminderWorker] worker stopped: %v", err)
		}
	}()
}

func handleTokenReminder(tokenSvc hrtoken.TokenService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.TokenReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderWorker] invalid payload: %v", err)
			return err
		}

		if err := tokenSvc.DeliverReminder(p.TokenID); err != nil {
			log.Printf("[ReminderWorker] failed to deliver reminder for token %s: %v", p.TokenID, err)
			return err
		}
		return nil
	}
}
