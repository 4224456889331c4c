package payment

import (
	"context"
	"net/http"
	"testing"

	bookingRepo "tourbook/database/repository/booking"
	"tourbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testSiteURL   = "https://tours.example.com"
	testBookingID = "b7a9e3d0-9c1f-4e0a-8b36-5d1f2a3c4e5f"
)

// fakeStore records ApplyPaymentResult calls against a single booking.
type fakeStore struct {
	booking *models.Booking
	applied int
	failErr error
}

func (s *fakeStore) ApplyPaymentResult(id string, status models.PaymentStatus, details models.PaymentDetails) (*models.Booking, error) {
	if s.failErr != nil {
		return nil, s.failErr
	}
	if s.booking == nil || s.booking.ID != id {
		return nil, bookingRepo.ErrNotFound
	}
	s.applied++
	s.booking.PaymentStatus = status
	s.booking.PaymentDetails = &details
	return s.booking, nil
}

type fakeNotifier struct {
	sent    int
	failErr error
}

func (n *fakeNotifier) SendBookingConfirmation(ctx context.Context, booking *models.Booking, status models.PaymentStatus) error {
	n.sent++
	return n.failErr
}

func newTestReconciler(store *fakeStore, notifier *fakeNotifier) *Reconciler {
	return &Reconciler{
		Store:    store,
		Notifier: notifier,
		Secret:   testSecret,
		SiteURL:  testSiteURL,
		Logger:   zap.NewNop(),
	}
}

func pendingBooking() *models.Booking {
	return &models.Booking{
		ID:            testBookingID,
		ActivityName:  "Phi Phi Island Tour",
		PackageName:   "Speedboat",
		Email:         "guest@example.com",
		TotalPrice:    1500.00,
		PaymentStatus: models.PaymentPending,
		PaymentToken:  "PMT-1",
		InvoiceNo:     "INV-1735600000000-a1b2c3",
	}
}

// signedCallback builds a gateway callback payload with a valid hash.
func signedCallback(status string) map[string]string {
	fields := map[string]string{
		"version":         "7.0",
		"merchant_id":     "JT01",
		"order_id":        "PMT-1",
		"invoice_no":      "PMT-1",
		"currency":        "764",
		"amount":          "000000150000",
		"transaction_ref": "TRX-778899",
		"approval_code":   "831000",
		"payment_channel": "001",
		"payment_status":  status,
		"masked_pan":      "411111XXXXXX1111",
		"payment_scheme":  "VI",
		"user_defined_1":  testBookingID,
	}
	fields["hash_value"] = Sign(fields, callbackSignatureOrder, testSecret)
	return fields
}

func TestReconcilePaidCallback(t *testing.T) {
	store := &fakeStore{booking: pendingBooking()}
	notifier := &fakeNotifier{}
	r := newTestReconciler(store, notifier)

	redirect, err := r.Reconcile(context.Background(), http.MethodPost, signedCallback("000"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, redirect.Status)
	assert.Equal(t, testSiteURL+"/auth/signin?bookingComplete=true", redirect.Location)

	assert.Equal(t, models.PaymentPaid, store.booking.PaymentStatus)
	require.NotNil(t, store.booking.PaymentDetails)
	assert.Equal(t, "000", store.booking.PaymentDetails.RespCode)
	assert.Equal(t, "TRX-778899", store.booking.PaymentDetails.TranRef)
	assert.Equal(t, "001", store.booking.PaymentDetails.ChannelCode)
	assert.Equal(t, 1500.00, store.booking.PaymentDetails.PaidAmount)
	assert.Equal(t, "411111XXXXXX1111", store.booking.PaymentDetails.CardNo)
	assert.Equal(t, 1, notifier.sent)
}

func TestReconcileIsIdempotent(t *testing.T) {
	store := &fakeStore{booking: pendingBooking()}
	notifier := &fakeNotifier{}
	r := newTestReconciler(store, notifier)

	payload := signedCallback("000")
	first, err := r.Reconcile(context.Background(), http.MethodPost, payload)
	require.NoError(t, err)
	statusAfterFirst := store.booking.PaymentStatus
	detailsAfterFirst := *store.booking.PaymentDetails

	second, err := r.Reconcile(context.Background(), http.MethodPost, payload)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, statusAfterFirst, store.booking.PaymentStatus)
	assert.Equal(t, detailsAfterFirst.TranRef, store.booking.PaymentDetails.TranRef)
	assert.Equal(t, detailsAfterFirst.PaidAmount, store.booking.PaymentDetails.PaidAmount)
	assert.Equal(t, 2, store.applied, "redelivery overwrites rather than appends")
}

func TestReconcileRejectsTamperedPost(t *testing.T) {
	store := &fakeStore{booking: pendingBooking()}
	notifier := &fakeNotifier{}
	r := newTestReconciler(store, notifier)

	payload := signedCallback("000")
	payload["amount"] = "000000999900"

	_, err := r.Reconcile(context.Background(), http.MethodPost, payload)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	assert.Equal(t, 0, store.applied, "booking must not be touched on signature mismatch")
	assert.Equal(t, models.PaymentPending, store.booking.PaymentStatus)
	assert.Equal(t, 0, notifier.sent)
}

func TestReconcileGetWithoutSignature(t *testing.T) {
	store := &fakeStore{booking: pendingBooking()}
	notifier := &fakeNotifier{}
	r := newTestReconciler(store, notifier)

	// Cancellation redirects arrive as unsigned GETs.
	payload := signedCallback("003")
	delete(payload, "hash_value")
	payload["amount"] = ""

	redirect, err := r.Reconcile(context.Background(), http.MethodGet, payload)
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, redirect.Status)
	assert.Equal(t, models.PaymentCancelled, store.booking.PaymentStatus)
	assert.Equal(t, 0.0, store.booking.PaymentDetails.PaidAmount)
}

func TestReconcileMissingCorrelationField(t *testing.T) {
	store := &fakeStore{booking: pendingBooking()}
	notifier := &fakeNotifier{}
	r := newTestReconciler(store, notifier)

	payload := map[string]string{
		"version":        "7.0",
		"payment_status": "000",
	}
	payload["hash_value"] = Sign(payload, callbackSignatureOrder, testSecret)

	redirect, err := r.Reconcile(context.Background(), http.MethodPost, payload)
	require.NoError(t, err)

	assert.Equal(t, testSiteURL+"/", redirect.Location)
	assert.Equal(t, 0, store.applied)
	assert.Equal(t, 0, notifier.sent)
}

func TestReconcileUnknownBooking(t *testing.T) {
	store := &fakeStore{booking: nil} // nothing to resolve against
	notifier := &fakeNotifier{}
	r := newTestReconciler(store, notifier)

	redirect, err := r.Reconcile(context.Background(), http.MethodPost, signedCallback("000"))
	require.NoError(t, err, "unknown bookings are a benign no-op, never an error to the gateway")

	assert.Equal(t, http.StatusFound, redirect.Status)
	assert.Equal(t, testSiteURL+"/", redirect.Location)
	assert.Equal(t, 0, notifier.sent)
}

func TestReconcileUnknownStatusCode(t *testing.T) {
	store := &fakeStore{booking: pendingBooking()}
	r := newTestReconciler(store, &fakeNotifier{})

	_, err := r.Reconcile(context.Background(), http.MethodPost, signedCallback("5555"))
	require.NoError(t, err)

	assert.Equal(t, models.PaymentUnknown, store.booking.PaymentStatus)
}

func TestReconcileNotifierFailureDoesNotFailRedirect(t *testing.T) {
	store := &fakeStore{booking: pendingBooking()}
	notifier := &fakeNotifier{failErr: assert.AnError}
	r := newTestReconciler(store, notifier)

	redirect, err := r.Reconcile(context.Background(), http.MethodPost, signedCallback("000"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, redirect.Status)
	assert.Equal(t, models.PaymentPaid, store.booking.PaymentStatus, "dispatch failure never rolls back the status")
}
