package notification

import (
	"bytes"
	"fmt"
	"html/template"

	"tourbook/models"
)

// statusColors drive the payment-status badge in the confirmation email.
var statusColors = map[models.PaymentStatus]string{
	models.PaymentPaid:      "#4CAF50",
	models.PaymentFailed:    "#F44336",
	models.PaymentPending:   "#FFC107",
	models.PaymentCancelled: "#9E9E9E",
	models.PaymentTimeout:   "#9E9E9E",
	models.PaymentUnknown:   "#9E9E9E",
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
      <h1 style="color: #2B6CB0; margin-bottom: 20px;">Booking Confirmation</h1>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
        <h2 style="color: #2D3748; margin-bottom: 15px;">Booking Details</h2>
        <p><strong>Invoice No:</strong> {{.Booking.InvoiceNo}}</p>
        <p><strong>Activity:</strong> {{.Booking.ActivityName}}</p>
        <p><strong>Package:</strong> {{.Booking.PackageName}}</p>
        <p><strong>Travel Date:</strong> {{.Booking.TravelDate.Format "02 Jan 2006"}}</p>
        <p><strong>Payment Status:</strong> <span style="color: {{.StatusColor}}; font-weight: bold;">{{.Status}}</span></p>
      </div>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 20px;">
        <h2 style="color: #2D3748; margin-bottom: 15px;">Guest Information</h2>
        <p><strong>Name:</strong> {{.Booking.GuestName}}</p>
        <p><strong>Nationality:</strong> {{.Booking.Nationality}}</p>
        <p><strong>Email:</strong> {{.Booking.Email}}</p>
        <p><strong>Phone:</strong> {{.Booking.Phone}}</p>
        <p><strong>Guests:</strong> {{.Booking.Adults}} adult(s), {{.Booking.Children}} child(ren)</p>
      </div>

      <div style="background-color: #f8f9fa; padding: 20px; border-radius: 8px;">
        <h2 style="color: #2D3748; margin-bottom: 15px;">Payment</h2>
        <p><strong>Total:</strong> {{printf "%.2f" .Booking.TotalPrice}} THB</p>
        {{if .Booking.PaymentDetails}}
        <p><strong>Transaction Ref:</strong> {{.Booking.PaymentDetails.TranRef}}</p>
        <p><strong>Paid Amount:</strong> {{printf "%.2f" .Booking.PaymentDetails.PaidAmount}} THB</p>
        {{if .Booking.PaymentDetails.CardNo}}<p><strong>Card:</strong> {{.Booking.PaymentDetails.CardNo}}</p>{{end}}
        {{end}}
      </div>
    </div>
  </body>
</html>`))

// renderConfirmation produces the HTML body for a booking confirmation email.
func renderConfirmation(booking *models.Booking, status models.PaymentStatus) (string, error) {
	color, ok := statusColors[status]
	if !ok {
		color = "#9E9E9E"
	}

	var buf bytes.Buffer
	err := confirmationTmpl.Execute(&buf, struct {
		Booking     *models.Booking
		Status      models.PaymentStatus
		StatusColor string
	}{booking, status, color})
	if err != nil {
		return "", fmt.Errorf("failed to render confirmation email: %w", err)
	}
	return buf.String(), nil
}
