package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"andeanscapes/config"
	"andeanscapes/models"
	"andeanscapes/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
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
	mux.HandleFunc(tasks.TypeDepositReminder, handleDepositReminder(logger))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// handleDepositReminder delivers the follow-up. Delivery is a structured
// log entry the operations team watches; there is no push or email
// provider in this deployment.
func handleDepositReminder(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid deposit reminder payload", zap.Error(err))
			return err
		}

		logger.Info("deposit still pending, follow up with guest",
			zap.String("intentId", p.IntentID),
			zap.String("experienceId", p.ExperienceID),
			zap.String("contactName", p.ContactName),
			zap.String("contactPhone", p.ContactPhone),
			zap.String("dateLabel", p.DateLabel))
		return nil
	}
}
