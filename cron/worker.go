package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tourbook/config"
	bookingRepo "tourbook/database/repository/booking"
	"tourbook/models"
	"tourbook/services/notification"
	"tourbook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitMailWorker runs the async confirmation-email worker in background.
func InitMailWorker(repo bookingRepo.BookingRepository, mailer notification.NotificationService) {
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
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask(repo, mailer))

	// Start async worker with retry logic
	go func() {
		log.Println("[MailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[MailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[MailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(repo bookingRepo.BookingRepository, mailer notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[MailWorker] Invalid payload: %v", err)
			return err
		}

		booking, err := repo.GetByID(p.BookingID)
		if err != nil {
			// A deleted booking is not worth retrying.
			log.Printf("[MailWorker] Booking %s not found, dropping task: %v", p.BookingID, err)
			return nil
		}

		return mailer.SendBookingConfirmation(ctx, booking, p.Status)
	}
}
