package payment

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	bookingRepo "tourbook/database/repository/booking"
	"tourbook/models"

	"go.uber.org/zap"
)

// BookingStore is the slice of the booking repository the reconciler needs:
// one atomic status+details write keyed by booking id.
type BookingStore interface {
	ApplyPaymentResult(id string, status models.PaymentStatus, details models.PaymentDetails) (*models.Booking, error)
}

// Notifier dispatches the post-reconciliation confirmation email. Calls are
// best-effort: a failure is logged and never blocks the gateway response.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, booking *models.Booking, status models.PaymentStatus) error
}

// Redirect is the reconciler's answer to the gateway: where to send the
// customer's browser next.
type Redirect struct {
	Status   int
	Location string
}

// Reconciler applies verified gateway callbacks to booking records.
type Reconciler struct {
	Store    BookingStore
	Notifier Notifier
	Secret   string
	SiteURL  string
	Logger   *zap.Logger
}

// PayloadFromValues flattens a POST form body or GET query string into the
// single field map the reconciler consumes. Repeated keys keep their first
// value, matching how the gateway sends them.
func PayloadFromValues(values url.Values) map[string]string {
	fields := make(map[string]string, len(values))
	for key := range values {
		fields[key] = values.Get(key)
	}
	return fields
}

// Reconcile verifies a callback and applies its outcome to the matching
// booking exactly once per distinct payload. Redelivery of the same payload
// overwrites to the same state, so processing is idempotent.
//
// POST callbacks must carry a valid hash_value; ErrSignatureMismatch is
// returned before the booking is touched. GET callbacks are plain redirects
// and cancellations, which the gateway does not always sign, so they proceed
// unverified. A missing correlation field or unknown booking is a benign
// no-op redirect to the site root: the gateway has no useful retry path for
// either.
func (r *Reconciler) Reconcile(ctx context.Context, method string, fields map[string]string) (Redirect, error) {
	if !Verify(fields, callbackSignatureOrder, r.Secret, fields["hash_value"]) {
		if method == http.MethodPost {
			r.Logger.Error("callback hash verification failed",
				zap.String("order_id", fields["order_id"]))
			return Redirect{}, ErrSignatureMismatch
		}
		// GET redirects may legitimately arrive unsigned.
		r.Logger.Warn("unsigned GET callback accepted",
			zap.String("order_id", fields["order_id"]))
	}

	bookingID := fields["user_defined_1"]
	if bookingID == "" {
		r.Logger.Error("no booking id found in callback",
			zap.String("order_id", fields["order_id"]))
		return r.redirectHome(), nil
	}

	status := MapStatus(fields["payment_status"])
	paidAmount, err := DecodeAmount(fields["amount"])
	if err != nil {
		r.Logger.Warn("unparseable callback amount, recording zero",
			zap.String("amount", fields["amount"]),
			zap.String("booking_id", bookingID))
		paidAmount = 0
	}

	details := models.PaymentDetails{
		RespCode:      fields["payment_status"],
		TranRef:       fields["transaction_ref"],
		ChannelCode:   fields["payment_channel"],
		PaidAmount:    paidAmount,
		IppPeriod:     fields["ippPeriod"],
		PaymentScheme: fields["payment_scheme"],
		CardNo:        fields["masked_pan"],
		UpdatedAt:     time.Now(),
	}

	booking, err := r.Store.ApplyPaymentResult(bookingID, status, details)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			r.Logger.Error("booking not found for callback", zap.String("booking_id", bookingID))
			return r.redirectHome(), nil
		}
		r.Logger.Error("failed to persist payment result",
			zap.String("booking_id", bookingID), zap.Error(err))
		return r.redirectHome(), nil
	}

	r.Logger.Info("booking reconciled",
		zap.String("booking_id", booking.ID),
		zap.String("status", string(status)),
		zap.String("tran_ref", details.TranRef),
	)

	// Best-effort: the status update is already durable, and the gateway's
	// redirect must not wait on (or fail with) the mailer.
	if err := r.Notifier.SendBookingConfirmation(ctx, booking, status); err != nil {
		r.Logger.Error("confirmation dispatch failed",
			zap.String("booking_id", booking.ID), zap.Error(err))
	}

	return Redirect{
		Status:   http.StatusFound,
		Location: r.SiteURL + "/auth/signin?bookingComplete=true",
	}, nil
}

func (r *Reconciler) redirectHome() Redirect {
	return Redirect{Status: http.StatusFound, Location: r.SiteURL + "/"}
}
