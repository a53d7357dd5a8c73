package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"buildlanka/config"
	notificationRepo "buildlanka/database/repository/notification"
	"buildlanka/models"
	"buildlanka/services/tasks"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitSubmissionWorker runs the async worker that acknowledges partner
// submissions in the background.
func InitSubmissionWorker(notifRepo notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePartnerSubmitted, handlePartnerSubmitted(notifRepo))

	go func() {
		log.Println("[SubmissionWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SubmissionWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SubmissionWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handlePartnerSubmitted(notifRepo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.PartnerSubmittedPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[SubmissionWorker] invalid payload: %v", err)
			return err
		}

		log.Printf("[SubmissionWorker] acknowledging submission %s (%s, %s)",
			p.PartnerID, p.BusinessName, p.PartnerType)

		notification := &models.Notification{
			ID:        uuid.New().String(),
			PartnerID: p.PartnerID,
			Channel:   "whatsapp",
			Message: fmt.Sprintf("Thank you %s! Your %s registration for %s district is under review.",
				p.BusinessName, p.PartnerType, p.District),
			Sent:      true,
			CreatedAt: time.Now(),
		}
		if err := notifRepo.Create(notification); err != nil {
			log.Printf("[SubmissionWorker] failed to record acknowledgement: %v", err)
			return err
		}
		return nil
	}
}
