package payment

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// amountWidth is the gateway's fixed wire width for amounts: minor currency
// units, zero-padded to twelve characters.
const amountWidth = 12

// EncodeAmount converts a decimal amount string (e.g. "1500.00") into the
// gateway's fixed-width minor-unit form ("000000150000"). Zero is valid and
// encodes to all zeros; the gateway uses it for tokenization-style requests.
func EncodeAmount(amount string) (string, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return "", ErrInvalidAmount
	}
	if value < 0 || math.IsInf(value, 0) || math.IsNaN(value) {
		return "", ErrInvalidAmount
	}

	minor := int64(math.Round(value * 100))
	encoded := fmt.Sprintf("%0*d", amountWidth, minor)
	if len(encoded) > amountWidth {
		return "", ErrInvalidAmount
	}
	return encoded, nil
}

// DecodeAmount recovers the major-unit decimal amount from a callback's
// minor-unit string. An empty amount decodes to zero, matching the
// gateway's behavior on cancellations.
func DecodeAmount(encoded string) (float64, error) {
	if encoded == "" {
		return 0, nil
	}
	minor, err := strconv.ParseInt(strings.TrimSpace(encoded), 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return float64(minor) / 100, nil
}
