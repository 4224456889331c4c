package handlers

import (
	"errors"
	"net/http"

	bookingRepo "tourbook/database/repository/booking"
	"tourbook/models"
	"tourbook/services/booking"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking CRUD endpoints.
type BookingHandler struct {
	service booking.BookingService
	logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{service: service, logger: logger}
}

// CreateBookingHandler creates a Pending booking and returns its identifiers
// so the frontend can proceed to payment initiation.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var input booking.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	created, err := h.service.CreateBooking(input)
	if err != nil {
		h.logger.Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"bookingId":    created.ID,
		"invoiceNo":    created.InvoiceNo,
		"paymentToken": created.PaymentToken,
		"totalPrice":   created.TotalPrice,
	})
}

// GetBookingHandler returns a single booking by id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	found, err := h.service.GetBooking(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", id)
			return
		}
		h.logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", "")
		return
	}
	c.JSON(http.StatusOK, found)
}

// ListBookingsHandler returns bookings, optionally filtered by status/email.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	filter := bookingRepo.ListFilter{
		Status: models.PaymentStatus(c.Query("status")),
		Email:  c.Query("email"),
	}

	bookings, err := h.service.ListBookings(filter)
	if err != nil {
		h.logger.Error("failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// DeleteBookingHandler removes a booking. Admin operation, unrelated to the
// payment flow.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.service.DeleteBooking(id); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "booking not found", id)
			return
		}
		h.logger.Error("failed to delete booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
