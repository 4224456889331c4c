package bookingRepo

import (
	"errors"
	"time"

	"tourbook/models"
)

// ErrNotFound is returned when a booking id does not resolve to a document.
// The payment callback path treats it as a benign no-op, so it must be
// distinguishable from infrastructure failures.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	GetByPaymentToken(token string) (*models.Booking, error)
	List(filter ListFilter) ([]models.Booking, error)
	Count() (int64, error)
	Delete(id string) error

	// ApplyPaymentResult sets the booking's payment status and details in a
	// single atomic update and returns the updated document. Status and
	// details always land together, even under concurrent duplicate
	// callbacks for the same booking.
	ApplyPaymentResult(id string, status models.PaymentStatus, details models.PaymentDetails) (*models.Booking, error)

	// ExpirePending marks bookings still Pending and created before the
	// cutoff as Timeout. Returns the number of bookings expired.
	ExpirePending(cutoff time.Time) (int64, error)
}

// ListFilter narrows List results; zero values mean "any".
type ListFilter struct {
	Status models.PaymentStatus
	Email  string
}
