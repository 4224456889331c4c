package handlers

import (
	"errors"
	"net/http"

	bookingRepo "tourbook/database/repository/booking"
	"tourbook/services/booking"
	"tourbook/services/payment"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment initiation and callback endpoints.
type PaymentHandler struct {
	bookingSvc booking.BookingService
	reconciler *payment.Reconciler
	logger     *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(bookingSvc booking.BookingService, reconciler *payment.Reconciler, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{bookingSvc: bookingSvc, reconciler: reconciler, logger: logger}
}

// InitiatePaymentHandler builds the signed redirect field set for a booking.
// The frontend submits the returned fields as a form POST to the gateway's
// hosted payment page.
func (h *PaymentHandler) InitiatePaymentHandler(c *gin.Context) {
	var input struct {
		BookingID string `json:"bookingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	fields, err := h.bookingSvc.InitiatePayment(input.BookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found", input.BookingID)
		case errors.Is(err, payment.ErrInvalidAmount):
			utils.JSONError(c, http.StatusBadRequest, "invalid amount", err.Error())
		default:
			h.logger.Error("failed to build payment request", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "failed to initiate payment", "")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"paymentRequest": fields})
}

// PaymentCallbackHandler receives gateway notifications. The gateway POSTs
// the primary result and GETs plain redirects/cancellations; both funnel
// into the reconciler, which answers with a browser redirect. The only
// non-redirect response is a 400 on a POST with a bad signature.
func (h *PaymentHandler) PaymentCallbackHandler(c *gin.Context) {
	var fields map[string]string

	switch c.Request.Method {
	case http.MethodPost:
		if err := c.Request.ParseForm(); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "malformed callback body", err.Error())
			return
		}
		fields = payment.PayloadFromValues(c.Request.PostForm)
	case http.MethodGet:
		fields = payment.PayloadFromValues(c.Request.URL.Query())
	default:
		c.Status(http.StatusMethodNotAllowed)
		return
	}

	redirect, err := h.reconciler.Reconcile(c.Request.Context(), c.Request.Method, fields)
	if err != nil {
		if errors.Is(err, payment.ErrSignatureMismatch) {
			c.String(http.StatusBadRequest, "Invalid hash value")
			return
		}
		// Reconcile handles its own failures with safe redirects; anything
		// else reaching here is unexpected.
		h.logger.Error("callback reconciliation failed", zap.Error(err))
		c.String(http.StatusBadRequest, "Bad Request")
		return
	}

	c.Redirect(redirect.Status, redirect.Location)
}
