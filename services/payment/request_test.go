package payment

import (
	"testing"

	"tourbook/config"
	"tourbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPaymentConfig() config.PaymentConfig {
	return config.PaymentConfig{
		MerchantID: "JT01",
		SecretKey:  testSecret,
		SiteURL:    "https://tours.example.com",
	}
}

func buildInput() models.PaymentRequestInput {
	return models.PaymentRequestInput{
		Description:   "Phi Phi Island Tour - Speedboat",
		OrderID:       "PMT-1",
		Amount:        "1500.00",
		CustomerEmail: "guest@example.com",
		FrontendURL:   "https://tours.example.com/payment-result",
		BackendURL:    "https://tours.example.com/api/payment/callback",
		CancelURL:     "https://tours.example.com/api/payment/callback",
		BookingID:     "b7a9e3d0-9c1f-4e0a-8b36-5d1f2a3c4e5f",
	}
}

func TestNewRequestBuilderRequiresMerchantConfig(t *testing.T) {
	_, err := NewRequestBuilder(config.PaymentConfig{}, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingConfig)

	_, err = NewRequestBuilder(config.PaymentConfig{MerchantID: "JT01"}, zap.NewNop())
	assert.ErrorIs(t, err, ErrMissingConfig)

	_, err = NewRequestBuilder(testPaymentConfig(), zap.NewNop())
	assert.NoError(t, err)
}

func TestBuildPaymentRequest(t *testing.T) {
	builder, err := NewRequestBuilder(testPaymentConfig(), zap.NewNop())
	require.NoError(t, err)

	fields, err := builder.Build(buildInput())
	require.NoError(t, err)

	assert.Equal(t, "7.0", fields["version"])
	assert.Equal(t, "JT01", fields["merchant_id"])
	assert.Equal(t, "764", fields["currency"])
	assert.Equal(t, "000000150000", fields["amount"])
	assert.Equal(t, "PMT-1", fields["order_id"])
	assert.Equal(t, "PMT-1", fields["invoice_no"], "invoice_no mirrors order_id on the wire")
	assert.Equal(t, "A", fields["payment_option"])
	assert.Equal(t, "en", fields["default_lang"])
	assert.Equal(t, "b7a9e3d0-9c1f-4e0a-8b36-5d1f2a3c4e5f", fields["user_defined_1"])

	// The hash must cover the request's own fields over the fixed order.
	expected := Sign(fields, requestSignatureOrder, testSecret)
	assert.Equal(t, expected, fields["hash_value"])
}

func TestBuildCancelURLFallsBackToFrontend(t *testing.T) {
	builder, err := NewRequestBuilder(testPaymentConfig(), zap.NewNop())
	require.NoError(t, err)

	in := buildInput()
	in.CancelURL = ""
	fields, err := builder.Build(in)
	require.NoError(t, err)

	assert.Equal(t, in.FrontendURL, fields["cancel_url"])
}

func TestBuildRejectsInvalidAmount(t *testing.T) {
	builder, err := NewRequestBuilder(testPaymentConfig(), zap.NewNop())
	require.NoError(t, err)

	in := buildInput()
	in.Amount = "not-a-number"
	_, err = builder.Build(in)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

// Only user_defined_1 is populated among the protocol's optional field set;
// the rest must stay absent so the skip rule leaves them out of the hash.
func TestBuildOmitsUnusedOptionalFields(t *testing.T) {
	builder, err := NewRequestBuilder(testPaymentConfig(), zap.NewNop())
	require.NoError(t, err)

	fields, err := builder.Build(buildInput())
	require.NoError(t, err)

	for _, key := range []string{"promotion", "pay_category_id", "user_defined_2", "recurring", "payment_expiry"} {
		_, present := fields[key]
		assert.False(t, present, "optional field %s must be absent", key)
	}
}
