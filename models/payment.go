package models

// PaymentRequestInput carries the booking data the payment request builder
// needs to assemble a redirect payload for the gateway's hosted page.
type PaymentRequestInput struct {
	Description   string // Shown on the gateway's payment page
	OrderID       string // Doubles as invoice_no on the wire
	Amount        string // Decimal string in THB, e.g. "1500.00"
	CustomerEmail string
	FrontendURL   string // result_url_1
	BackendURL    string // result_url_2
	CancelURL     string // Falls back to FrontendURL when empty
	BookingID     string // Echoed back by the gateway in user_defined_1
}

// ConfirmationPayload is the queued email job for a reconciled booking.
type ConfirmationPayload struct {
	BookingID string        `json:"bookingId"`
	Status    PaymentStatus `json:"status"`
}
