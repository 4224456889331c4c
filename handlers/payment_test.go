package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	bookingRepo "tourbook/database/repository/booking"
	"tourbook/models"
	"tourbook/services/payment"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubStore struct {
	booking *models.Booking
}

func (s *stubStore) ApplyPaymentResult(id string, status models.PaymentStatus, details models.PaymentDetails) (*models.Booking, error) {
	if s.booking == nil || s.booking.ID != id {
		return nil, bookingRepo.ErrNotFound
	}
	s.booking.PaymentStatus = status
	s.booking.PaymentDetails = &details
	return s.booking, nil
}

type stubNotifier struct{ sent int }

func (n *stubNotifier) SendBookingConfirmation(context.Context, *models.Booking, models.PaymentStatus) error {
	n.sent++
	return nil
}

func newCallbackRouter(store *stubStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	reconciler := &payment.Reconciler{
		Store:    store,
		Notifier: &stubNotifier{},
		Secret:   "test-secret-key",
		SiteURL:  "https://tours.example.com",
		Logger:   zap.NewNop(),
	}
	h := NewPaymentHandler(nil, reconciler, zap.NewNop())

	r := gin.New()
	r.POST("/api/payment/callback", h.PaymentCallbackHandler)
	r.GET("/api/payment/callback", h.PaymentCallbackHandler)
	return r
}

func TestPaymentCallbackPostRejectsBadSignature(t *testing.T) {
	store := &stubStore{booking: &models.Booking{ID: "bk-1", PaymentStatus: models.PaymentPending}}
	router := newCallbackRouter(store)

	form := url.Values{}
	form.Set("payment_status", "000")
	form.Set("user_defined_1", "bk-1")
	form.Set("hash_value", "DEADBEEF")

	req := httptest.NewRequest(http.MethodPost, "/api/payment/callback", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid hash value", w.Body.String())
	assert.Equal(t, models.PaymentPending, store.booking.PaymentStatus)
}

func TestPaymentCallbackGetCancellation(t *testing.T) {
	store := &stubStore{booking: &models.Booking{ID: "bk-1", PaymentStatus: models.PaymentPending}}
	router := newCallbackRouter(store)

	// Cancellation redirects arrive as unsigned GETs and are exempt from
	// signature verification.
	req := httptest.NewRequest(http.MethodGet,
		"/api/payment/callback?payment_status=003&user_defined_1=bk-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://tours.example.com/auth/signin?bookingComplete=true", w.Header().Get("Location"))
	assert.Equal(t, models.PaymentCancelled, store.booking.PaymentStatus)
}

func TestPaymentCallbackUnknownBookingRedirectsHome(t *testing.T) {
	store := &stubStore{}
	router := newCallbackRouter(store)

	req := httptest.NewRequest(http.MethodGet,
		"/api/payment/callback?payment_status=003&user_defined_1=missing", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://tours.example.com/", w.Header().Get("Location"))
}
