package tasks

import (
	"encoding/json"

	"tourbook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "email:booking_confirmation"

// NewBookingConfirmationTask wraps a confirmation payload for the mail
// worker. The worker re-fetches the booking, so the payload stays small.
func NewBookingConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{asynq.MaxRetry(3)}

	return task, opts, nil
}
