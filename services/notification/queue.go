package notification

import (
	"context"
	"fmt"

	"tourbook/models"
	"tourbook/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueNotificationService enqueues confirmation email onto the Redis-backed
// task queue instead of sending inline. The reconciler must answer the
// gateway immediately; the mail worker drains the queue on its own clock.
type QueueNotificationService struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// SendBookingConfirmation enqueues the confirmation job for the mail worker.
func (s *QueueNotificationService) SendBookingConfirmation(ctx context.Context, booking *models.Booking, status models.PaymentStatus) error {
	task, opts, err := tasks.NewBookingConfirmationTask(models.ConfirmationPayload{
		BookingID: booking.ID,
		Status:    status,
	})
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}

	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}

	s.Logger.Debug("confirmation task enqueued",
		zap.String("task_id", info.ID),
		zap.String("booking_id", booking.ID),
	)
	return nil
}
