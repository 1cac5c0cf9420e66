package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const TypeWaitlistFollowUp = "waitlist:followup"

// WaitlistFollowUpPayload identifies the booking request to follow up on.
type WaitlistFollowUpPayload struct {
	RequestID string `json:"requestId"`
	SalonID   string `json:"salonId"`
}

// NewWaitlistFollowUpTask builds the deferred follow-up task for a request
// that opted into the waitlist.
func NewWaitlistFollowUpTask(payload WaitlistFollowUpPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeWaitlistFollowUp, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues deferred follow-up work.
type Scheduler interface {
	ScheduleWaitlistFollowUp(requestID, salonID string, fireAt time.Time) error
}

// AsynqScheduler enqueues tasks onto the Redis-backed asynq queue.
type AsynqScheduler struct {
	Client *asynq.Client
}

func (s *AsynqScheduler) ScheduleWaitlistFollowUp(requestID, salonID string, fireAt time.Time) error {
	task, opts, err := NewWaitlistFollowUpTask(WaitlistFollowUpPayload{RequestID: requestID, SalonID: salonID}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build waitlist follow-up task: %w", err)
	}
	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue waitlist follow-up for request %s: %w", requestID, err)
	}
	return nil
}
