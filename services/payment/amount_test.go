package payment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		want    string
		wantErr bool
	}{
		{name: "whole baht", amount: "1500.00", want: "000000150000"},
		{name: "no decimals", amount: "1500", want: "000000150000"},
		{name: "satang precision", amount: "0.25", want: "000000000025"},
		{name: "rounds half up", amount: "10.555", want: "000000001056"},
		{name: "rounds down", amount: "10.554", want: "000000001055"},
		{name: "zero is valid", amount: "0", want: "000000000000"},
		{name: "leading spaces tolerated", amount: " 42.50", want: "000000004250"},
		{name: "non numeric", amount: "abc", wantErr: true},
		{name: "empty", amount: "", wantErr: true},
		{name: "negative", amount: "-5.00", wantErr: true},
		{name: "overflows wire width", amount: "99999999999.00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeAmount(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, amountWidth)
		})
	}
}

func TestDecodeAmount(t *testing.T) {
	tests := []struct {
		encoded string
		want    float64
	}{
		{"000000150000", 1500.00},
		{"000000000025", 0.25},
		{"000000000000", 0},
		{"", 0}, // cancellations may omit the amount
	}

	for _, tt := range tests {
		got, err := DecodeAmount(tt.encoded)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := DecodeAmount("not-a-number")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

// Every amount with at most two fraction digits must survive the wire format
// unchanged.
func TestAmountRoundTrip(t *testing.T) {
	for _, value := range []float64{0, 0.01, 1, 99.99, 1500, 123456.78, 9999999999.99} {
		in := fmt.Sprintf("%.2f", value)
		encoded, err := EncodeAmount(in)
		require.NoError(t, err, in)

		decoded, err := DecodeAmount(encoded)
		require.NoError(t, err, in)
		assert.InDelta(t, value, decoded, 0.001, "round trip of %s", in)
	}
}
