package notification

import (
	"testing"
	"time"

	"tourbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderConfirmation(t *testing.T) {
	booking := &models.Booking{
		ID:           "b7a9e3d0-9c1f-4e0a-8b36-5d1f2a3c4e5f",
		ActivityName: "Phi Phi Island Tour",
		PackageName:  "Speedboat",
		TravelDate:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		GuestName:    "Ada Lovelace",
		Nationality:  "British",
		Email:        "ada@example.com",
		Phone:        "+66 81 234 5678",
		Adults:       2,
		Children:     1,
		TotalPrice:   3000,
		InvoiceNo:    "INV-1735600000000-a1b2c3",
		PaymentDetails: &models.PaymentDetails{
			TranRef:    "TRX-778899",
			PaidAmount: 3000,
			CardNo:     "411111XXXXXX1111",
		},
	}

	body, err := renderConfirmation(booking, models.PaymentPaid)
	require.NoError(t, err)

	assert.Contains(t, body, "INV-1735600000000-a1b2c3")
	assert.Contains(t, body, "Phi Phi Island Tour")
	assert.Contains(t, body, "Speedboat")
	assert.Contains(t, body, "14 Sep 2026")
	assert.Contains(t, body, "Ada Lovelace")
	assert.Contains(t, body, "3000.00 THB")
	assert.Contains(t, body, "TRX-778899")
	assert.Contains(t, body, "#4CAF50", "Paid renders with the green badge")
}

func TestRenderConfirmationWithoutDetails(t *testing.T) {
	booking := &models.Booking{
		ActivityName: "Phi Phi Island Tour",
		PackageName:  "Speedboat",
		GuestName:    "Ada Lovelace",
		TotalPrice:   3000,
		InvoiceNo:    "INV-1",
	}

	body, err := renderConfirmation(booking, models.PaymentCancelled)
	require.NoError(t, err)

	assert.Contains(t, body, "Cancelled")
	assert.NotContains(t, body, "Transaction Ref")
}

func TestRenderConfirmationEscapesGuestInput(t *testing.T) {
	booking := &models.Booking{
		ActivityName: "Phi Phi Island Tour",
		GuestName:    `<script>alert("x")</script>`,
		InvoiceNo:    "INV-1",
	}

	body, err := renderConfirmation(booking, models.PaymentUnknown)
	require.NoError(t, err)

	assert.NotContains(t, body, "<script>")
}
