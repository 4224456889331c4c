package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func requestFields() map[string]string {
	return map[string]string{
		"version":             "7.0",
		"merchant_id":         "JT01",
		"payment_description": "Phi Phi Island Tour - Speedboat",
		"order_id":            "ORDER-1001",
		"invoice_no":          "ORDER-1001",
		"currency":            "764",
		"amount":              "000000150000",
		"customer_email":      "guest@example.com",
		"result_url_1":        "https://tours.example.com/payment-result",
		"result_url_2":        "https://tours.example.com/api/payment/callback",
		"payment_option":      "A",
		"default_lang":        "en",
		"user_defined_1":      "b7a9e3d0-9c1f-4e0a-8b36-5d1f2a3c4e5f",
	}
}

func TestSignIsDeterministic(t *testing.T) {
	fields := requestFields()

	first := Sign(fields, requestSignatureOrder, testSecret)
	second := Sign(fields, requestSignatureOrder, testSecret)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
	assert.Regexp(t, `^[0-9A-F]{40}$`, first)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	fields := requestFields()
	sig := Sign(fields, requestSignatureOrder, testSecret)

	assert.True(t, Verify(fields, requestSignatureOrder, testSecret, sig))
}

func TestVerifyIsCaseInsensitive(t *testing.T) {
	fields := requestFields()
	sig := Sign(fields, requestSignatureOrder, testSecret)

	assert.True(t, Verify(fields, requestSignatureOrder, testSecret, sig))
	// Some gateway environments send the hash lowercased.
	lower := make([]byte, len(sig))
	for i := range sig {
		c := sig[i]
		if c >= 'A' && c <= 'F' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
	assert.True(t, Verify(fields, requestSignatureOrder, testSecret, string(lower)))
}

// Absent and empty-string optional fields must contribute nothing to the
// signed message: the gateway skips them silently rather than inserting a
// separator, and the signature value depends on that rule.
func TestSignSkipsAbsentAndEmptyFields(t *testing.T) {
	base := requestFields()
	baseSig := Sign(base, requestSignatureOrder, testSecret)

	withEmpty := requestFields()
	withEmpty["promotion"] = ""
	withEmpty["user_defined_2"] = ""
	withEmpty["recurring"] = ""
	assert.Equal(t, baseSig, Sign(withEmpty, requestSignatureOrder, testSecret))

	withValue := requestFields()
	withValue["promotion"] = "SUMMER10"
	assert.NotEqual(t, baseSig, Sign(withValue, requestSignatureOrder, testSecret))
}

func TestSignIgnoresUnorderedFields(t *testing.T) {
	base := requestFields()
	baseSig := Sign(base, requestSignatureOrder, testSecret)

	// cancel_url is transmitted but not part of the signed field order.
	withExtra := requestFields()
	withExtra["cancel_url"] = "https://tours.example.com/cancel"
	assert.Equal(t, baseSig, Sign(withExtra, requestSignatureOrder, testSecret))
}

func TestVerifyRejectsMutatedField(t *testing.T) {
	fields := requestFields()
	sig := Sign(fields, requestSignatureOrder, testSecret)

	for _, key := range []string{"amount", "order_id", "customer_email", "user_defined_1"} {
		mutated := requestFields()
		mutated[key] = mutated[key][:len(mutated[key])-1] + "X"
		assert.False(t, Verify(mutated, requestSignatureOrder, testSecret, sig),
			"mutation of %s must break verification", key)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	fields := requestFields()
	sig := Sign(fields, requestSignatureOrder, testSecret)

	assert.False(t, Verify(fields, requestSignatureOrder, "another-secret", sig))
}
