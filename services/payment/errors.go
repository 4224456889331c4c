package payment

import "errors"

var (
	// ErrInvalidAmount signals a non-numeric or out-of-range amount.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrMissingConfig signals absent merchant credentials. Surfaced at
	// construction time so no partially-signed request is ever produced.
	ErrMissingConfig = errors.New("merchant id or secret key not configured")

	// ErrSignatureMismatch signals that a POST callback failed hash
	// verification and must be rejected without touching the booking.
	ErrSignatureMismatch = errors.New("callback signature mismatch")
)
