package payment

import "tourbook/models"

// statusByCode maps the gateway's payment_status codes onto booking payment
// statuses. The whole vocabulary lives here; anything the gateway invents
// later falls through to Unknown rather than being guessed at.
var statusByCode = map[string]models.PaymentStatus{
	"000":  models.PaymentPaid,
	"1001": models.PaymentPending,
	"1002": models.PaymentPending,
	"2001": models.PaymentFailed,
	"2002": models.PaymentFailed,
	"3001": models.PaymentCancelled,
	"003":  models.PaymentCancelled,
	"4000": models.PaymentTimeout,
}

// MapStatus resolves a gateway payment_status code to a booking status.
func MapStatus(code string) models.PaymentStatus {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return models.PaymentUnknown
}
