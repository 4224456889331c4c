package notification

import (
	"context"

	"tourbook/models"
)

// NotificationService dispatches booking confirmation email once a payment
// outcome has been reconciled. Implementations must be safe for concurrent
// use; callers treat every send as best-effort.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, booking *models.Booking, status models.PaymentStatus) error
}
