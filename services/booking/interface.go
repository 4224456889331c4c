package booking

import (
	"time"

	bookingRepo "tourbook/database/repository/booking"
	"tourbook/models"
)

// CreateBookingInput is the customer-submitted booking form. Names and the
// total price are resolved server-side from the referenced activity and
// package, never trusted from the client.
type CreateBookingInput struct {
	ActivityID  string    `json:"activityId" binding:"required"`
	PackageID   string    `json:"packageId" binding:"required"`
	TravelDate  time.Time `json:"travelDate" binding:"required"`
	GuestName   string    `json:"guestName" binding:"required"`
	Nationality string    `json:"nationality" binding:"required"`
	Email       string    `json:"email" binding:"required,email"`
	Phone       string    `json:"phone" binding:"required"`
	Adults      int       `json:"adults" binding:"required,min=1"`
	Children    int       `json:"children" binding:"min=0"`
}

// BookingService defines the booking operations exposed to handlers.
type BookingService interface {
	CreateBooking(input CreateBookingInput) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	ListBookings(filter bookingRepo.ListFilter) ([]models.Booking, error)
	DeleteBooking(id string) error
	CountBookings() (int64, error)

	// InitiatePayment builds the signed redirect field set that sends the
	// customer to the gateway's hosted payment page for this booking.
	InitiatePayment(bookingID string) (map[string]string, error)
}
