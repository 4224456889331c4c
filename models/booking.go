package models

import "time"

// PaymentStatus is the closed set of states a booking's payment can be in.
// Transitions out of Pending happen only through the payment reconciler
// (or an explicit admin edit).
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentCancelled PaymentStatus = "Cancelled"
	PaymentTimeout   PaymentStatus = "Timeout"
	PaymentUnknown   PaymentStatus = "Unknown"
)

// PaymentDetails is the verified gateway outcome attached to a booking.
// It is populated exactly once a callback has passed verification and is
// overwritten wholesale on redelivery.
type PaymentDetails struct {
	RespCode      string    `bson:"resp_code" json:"respCode"`
	TranRef       string    `bson:"tran_ref" json:"tranRef"`
	ChannelCode   string    `bson:"channel_code" json:"channelCode"`
	PaidAmount    float64   `bson:"paid_amount" json:"paidAmount"`
	IppPeriod     string    `bson:"ipp_period,omitempty" json:"ippPeriod,omitempty"`
	PaymentScheme string    `bson:"payment_scheme,omitempty" json:"paymentScheme,omitempty"`
	CardNo        string    `bson:"card_no,omitempty" json:"cardNo,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updatedAt"`
}

// Booking represents a confirmed tour booking record.
type Booking struct {
	ID           string    `bson:"id" json:"id"`                        // Unique booking identifier (UUID)
	ActivityID   string    `bson:"activity_id" json:"activityId"`       // Activity that was booked
	ActivityName string    `bson:"activity_name" json:"activityName"`   // Denormalized for invoices/emails
	PackageID    string    `bson:"package_id" json:"packageId"`         // Selected package
	PackageName  string    `bson:"package_name" json:"packageName"`     // Denormalized for invoices/emails
	TravelDate   time.Time `bson:"travel_date" json:"travelDate"`       // Date of the activity
	GuestName    string    `bson:"guest_name" json:"guestName"`
	Nationality  string    `bson:"nationality" json:"nationality"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Adults       int       `bson:"adults" json:"adults"`
	Children     int       `bson:"children" json:"children"`
	TotalPrice   float64   `bson:"total_price" json:"totalPrice"` // THB, fixed at creation

	PaymentStatus  PaymentStatus   `bson:"payment_status" json:"paymentStatus"`
	PaymentToken   string          `bson:"payment_token" json:"paymentToken"` // Correlation token minted at creation, unique
	InvoiceNo      string          `bson:"invoice_no" json:"invoiceNo"`       // Human-facing invoice number, unique
	PaymentDetails *PaymentDetails `bson:"payment_details,omitempty" json:"paymentDetails,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
