package payment

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// The gateway signs requests and callbacks over a fixed, protocol-mandated
// field order. Fields that are absent or empty contribute nothing to the
// signed message, not even a separator; the orders below must therefore
// never be re-sorted or extended without consulting the gateway docs.

// requestSignatureOrder is the field order for outbound payment requests.
var requestSignatureOrder = []string{
	"version",
	"merchant_id",
	"payment_description",
	"order_id",
	"invoice_no",
	"currency",
	"amount",
	"customer_email",
	"pay_category_id",
	"promotion",
	"user_defined_1",
	"user_defined_2",
	"user_defined_3",
	"user_defined_4",
	"user_defined_5",
	"result_url_1",
	"result_url_2",
	"enable_store_card",
	"stored_card_unique_id",
	"request_3ds",
	"recurring",
	"order_prefix",
	"recurring_amount",
	"allow_accumulate",
	"max_accumulate_amount",
	"recurring_interval",
	"recurring_count",
	"charge_next_date",
	"charge_on_date",
	"payment_option",
	"ipp_interest_type",
	"payment_expiry",
	"default_lang",
	"statement_descriptor",
}

// callbackSignatureOrder is the field order for inbound payment callbacks.
var callbackSignatureOrder = []string{
	"version",
	"request_timestamp",
	"merchant_id",
	"order_id",
	"invoice_no",
	"currency",
	"amount",
	"transaction_ref",
	"approval_code",
	"eci",
	"transaction_datetime",
	"payment_channel",
	"payment_status",
	"channel_response_code",
	"channel_response_desc",
	"masked_pan",
	"stored_card_unique_id",
	"backend_invoice",
	"paid_channel",
	"paid_agent",
	"recurring_unique_id",
	"user_defined_1",
	"user_defined_2",
	"user_defined_3",
	"user_defined_4",
	"user_defined_5",
	"browser_info",
	"ippPeriod",
	"ippInterestType",
	"ippInterestRate",
	"ippMerchantAbsorbRate",
	"payment_scheme",
	"process_by",
	"sub_merchant_list",
}

// Sign concatenates the present, non-empty values of fields in the given
// order and returns the HMAC-SHA1 of the result as uppercase hex.
func Sign(fields map[string]string, order []string, secret string) string {
	var sb strings.Builder
	for _, key := range order {
		if v := fields[key]; v != "" {
			sb.WriteString(v)
		}
	}

	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write([]byte(sb.String()))
	return strings.ToUpper(hex.EncodeToString(mac.Sum(nil)))
}

// Verify recomputes the signature over the payload's own fields and compares
// it to the provided one, case-insensitively. A mismatch is a verification
// failure, not an error; the caller decides whether to reject.
func Verify(fields map[string]string, order []string, secret, provided string) bool {
	expected := Sign(fields, order, secret)
	return hmac.Equal([]byte(expected), []byte(strings.ToUpper(provided)))
}
