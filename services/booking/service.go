package booking

import (
	"fmt"

	activityRepo "tourbook/database/repository/activity"
	bookingRepo "tourbook/database/repository/booking"
	"tourbook/models"
	"tourbook/services/payment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ActivityRepo activityRepo.ActivityRepository
	Builder      *payment.RequestBuilder
	SiteURL      string
	Logger       *zap.Logger
}

// CreateBooking persists a new Pending booking with a freshly minted payment
// token and invoice number. The total price is computed from the selected
// package's rates and is never mutated afterwards.
func (s *DefaultBookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	activity, err := s.ActivityRepo.GetActivityByID(input.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve activity: %w", err)
	}
	pkg, err := s.ActivityRepo.GetPackageByID(input.PackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve package: %w", err)
	}
	if pkg.ActivityID != activity.ID {
		return nil, fmt.Errorf("package %s does not belong to activity %s", pkg.ID, activity.ID)
	}

	totalPrice := float64(input.Adults)*pkg.AdultPrice + float64(input.Children)*pkg.ChildPrice
	if totalPrice <= 0 {
		return nil, fmt.Errorf("computed total price must be positive")
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		ActivityID:    activity.ID,
		ActivityName:  activity.Name,
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		TravelDate:    input.TravelDate,
		GuestName:     input.GuestName,
		Nationality:   input.Nationality,
		Email:         input.Email,
		Phone:         input.Phone,
		Adults:        input.Adults,
		Children:      input.Children,
		TotalPrice:    totalPrice,
		PaymentStatus: models.PaymentPending,
		PaymentToken:  uuid.New().String(),
		InvoiceNo:     newInvoiceNo(),
	}

	if err := s.Repo.Create(booking); err != nil {
		// Invoice numbers carry a random nonce; a collision is possible but
		// rare enough that one retry suffices.
		if bookingRepo.IsDuplicateKey(err) {
			booking.InvoiceNo = newInvoiceNo()
			err = s.Repo.Create(booking)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
	}

	s.Logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.String("invoice_no", booking.InvoiceNo),
		zap.Float64("total_price", booking.TotalPrice),
	)
	return booking, nil
}

// GetBooking retrieves a booking by its ID.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListBookings returns bookings matching the filter, newest first.
func (s *DefaultBookingService) ListBookings(filter bookingRepo.ListFilter) ([]models.Booking, error) {
	return s.Repo.List(filter)
}

// DeleteBooking removes a booking (admin operation, unrelated to payment flow).
func (s *DefaultBookingService) DeleteBooking(id string) error {
	return s.Repo.Delete(id)
}

// CountBookings returns the total number of bookings for the admin dashboard.
func (s *DefaultBookingService) CountBookings() (int64, error) {
	return s.Repo.Count()
}

// InitiatePayment assembles the signed redirect payload for a booking. The
// payment token rides as the gateway order id; the booking id travels in the
// user_defined_1 pass-through so callbacks can be correlated.
func (s *DefaultBookingService) InitiatePayment(bookingID string) (map[string]string, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}

	return s.Builder.Build(models.PaymentRequestInput{
		Description:   fmt.Sprintf("%s - %s", booking.ActivityName, booking.PackageName),
		OrderID:       booking.PaymentToken,
		Amount:        fmt.Sprintf("%.2f", booking.TotalPrice),
		CustomerEmail: booking.Email,
		FrontendURL:   s.SiteURL + "/payment-result",
		BackendURL:    s.SiteURL + "/api/payment/callback",
		CancelURL:     s.SiteURL + "/api/payment/callback",
		BookingID:     booking.ID,
	})
}
