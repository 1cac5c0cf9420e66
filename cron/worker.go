package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"salonflow/config"
	bookingRepo "salonflow/database/repository/bookingrequest"
	"salonflow/models"
	"salonflow/services/mail"
	"salonflow/services/tasks"

	"github.com/hibiken/asynq"
)

// InitWaitlistWorker runs the async worker that handles deferred waitlist
// follow-ups in the background.
func InitWaitlistWorker(requests bookingRepo.BookingRequestRepository, mailer mail.Mailer) {
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
	mux.HandleFunc(tasks.TypeWaitlistFollowUp, handleWaitlistFollowUp(requests, mailer))

	go func() {
		log.Println("[WaitlistWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Printf("[WaitlistWorker] worker stopped: %v", err)
		}
	}()
}

// handleWaitlistFollowUp re-reads the booking request and, when it is
// still pending, emails the client that they remain on the waitlist.
func handleWaitlistFollowUp(requests bookingRepo.BookingRequestRepository, mailer mail.Mailer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.WaitlistFollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[WaitlistWorker] invalid payload: %v", err)
			return err
		}

		req, err := requests.GetByID(ctx, p.RequestID)
		if err != nil {
			return fmt.Errorf("waitlist follow-up: %w", err)
		}

		// Requests already resolved from the dashboard need no follow-up.
		if req.Status != models.StatusPending && req.Status != models.StatusProviderRequested {
			return nil
		}
		if req.Email == "" {
			return nil
		}

		subject := "You're still on the waitlist"
		text := fmt.Sprintf(
			"Hi %s,\n\nYour request for %s (%s) is still on the waitlist. We'll reach out as soon as a spot opens up.\n",
			req.Name, req.Service, req.DateTimePreference)

		if err := mailer.Send(ctx, req.Email, subject, text, ""); err != nil {
			return fmt.Errorf("waitlist follow-up email to %s: %w", req.Email, err)
		}
		return nil
	}
}
