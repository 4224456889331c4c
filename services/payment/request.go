package payment

import (
	"tourbook/config"
	"tourbook/models"

	"go.uber.org/zap"
)

// Protocol constants for the gateway's redirect API. The deployment settles
// in THB only; 764 is its ISO 4217 numeric code.
const (
	protocolVersion = "7.0"
	currencyTHB     = "764"
	paymentOptAll   = "A"
	defaultLang     = "en"
)

// RequestBuilder assembles signed payment-initiation payloads for the
// gateway's hosted payment page.
type RequestBuilder struct {
	cfg    config.PaymentConfig
	logger *zap.Logger
}

// NewRequestBuilder returns a builder, or ErrMissingConfig if the merchant
// credentials are absent. Failing here keeps a misconfigured deployment from
// ever producing an unsignable request.
func NewRequestBuilder(cfg config.PaymentConfig, logger *zap.Logger) (*RequestBuilder, error) {
	if cfg.MerchantID == "" || cfg.SecretKey == "" {
		return nil, ErrMissingConfig
	}
	return &RequestBuilder{cfg: cfg, logger: logger}, nil
}

// Build returns the complete redirect field set for a booking, including the
// computed hash_value. The caller submits it as a form POST to the gateway.
func (b *RequestBuilder) Build(in models.PaymentRequestInput) (map[string]string, error) {
	amount, err := EncodeAmount(in.Amount)
	if err != nil {
		return nil, err
	}

	cancelURL := in.CancelURL
	if cancelURL == "" {
		cancelURL = in.FrontendURL
	}

	fields := map[string]string{
		"version":             protocolVersion,
		"merchant_id":         b.cfg.MerchantID,
		"payment_description": in.Description,
		"order_id":            in.OrderID,
		"invoice_no":          in.OrderID,
		"currency":            currencyTHB,
		"amount":              amount,
		"customer_email":      in.CustomerEmail,
		"result_url_1":        in.FrontendURL,
		"result_url_2":        in.BackendURL,
		"cancel_url":          cancelURL,
		"payment_option":      paymentOptAll,
		"default_lang":        defaultLang,
		"user_defined_1":      in.BookingID,
	}

	fields["hash_value"] = Sign(fields, requestSignatureOrder, b.cfg.SecretKey)

	b.logger.Debug("built payment request",
		zap.String("order_id", in.OrderID),
		zap.String("amount", amount),
	)
	return fields, nil
}
