//go:build unit

package payment_test

import (
	"testing"
	"time"

	"bookstore-api/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

func validCard() *payment.CardData {
	return &payment.CardData{
		Number:     "4539148803436467",
		Expiry:     "12/30",
		CVV:        "123",
		HolderName: "JOHN DOE",
	}
}

func TestInstrumentValidate_Card(t *testing.T) {
	t.Run("valid card returns network and last4", func(t *testing.T) {
		instrument := payment.Instrument{Method: payment.MethodCard, Card: validCard()}

		info, err := instrument.Validate(testNow)
		require.NoError(t, err)
		require.NotNil(t, info)
		assert.Equal(t, payment.NetworkVisa, info.Network)
		assert.Equal(t, "6467", info.Last4)
	})

	t.Run("missing payload", func(t *testing.T) {
		instrument := payment.Instrument{Method: payment.MethodCard}

		_, err := instrument.Validate(testNow)
		require.ErrorIs(t, err, payment.ErrCardDataRequired)
	})

	t.Run("empty field", func(t *testing.T) {
		card := validCard()
		card.CVV = ""
		instrument := payment.Instrument{Method: payment.MethodCard, Card: card}

		_, err := instrument.Validate(testNow)
		require.ErrorIs(t, err, payment.ErrCardFieldsRequired)
	})

	t.Run("first failure wins in fixed order", func(t *testing.T) {
		// Both the number and the cvv are wrong; the number check runs first.
		card := validCard()
		card.Number = "4539148803436468"
		card.CVV = "1"
		instrument := payment.Instrument{Method: payment.MethodCard, Card: card}

		_, err := instrument.Validate(testNow)
		require.ErrorIs(t, err, payment.ErrCardNumberChecksum)
	})

	t.Run("expired card", func(t *testing.T) {
		card := validCard()
		card.Expiry = "02/25"
		instrument := payment.Instrument{Method: payment.MethodCard, Card: card}

		_, err := instrument.Validate(testNow)
		require.ErrorIs(t, err, payment.ErrCardExpired)
	})
}

func TestInstrumentValidate_PayPal(t *testing.T) {
	cases := []struct {
		name   string
		paypal *payment.PayPalData
		errIs  error
	}{
		{name: "valid email", paypal: &payment.PayPalData{Email: "buyer@example.com"}},
		{name: "missing payload", paypal: nil, errIs: payment.ErrPayPalDataRequired},
		{name: "no at sign", paypal: &payment.PayPalData{Email: "buyer.example.com"}, errIs: payment.ErrInvalidPayPalEmail},
		{name: "no domain dot", paypal: &payment.PayPalData{Email: "buyer@example"}, errIs: payment.ErrInvalidPayPalEmail},
		{name: "contains whitespace", paypal: &payment.PayPalData{Email: "buy er@example.com"}, errIs: payment.ErrInvalidPayPalEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			instrument := payment.Instrument{Method: payment.MethodPayPal, PayPal: tc.paypal}

			info, err := instrument.Validate(testNow)
			assert.Nil(t, info)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInstrumentValidate_Transfer(t *testing.T) {
	cases := []struct {
		name     string
		transfer *payment.TransferData
		errIs    error
	}{
		{name: "valid reference", transfer: &payment.TransferData{Reference: "REF-2025-001"}},
		{name: "exactly five characters", transfer: &payment.TransferData{Reference: "12345"}},
		{name: "missing payload", transfer: nil, errIs: payment.ErrTransferDataRequired},
		{name: "too short", transfer: &payment.TransferData{Reference: "1234"}, errIs: payment.ErrReferenceTooShort},
		{name: "whitespace does not count", transfer: &payment.TransferData{Reference: "  123  "}, errIs: payment.ErrReferenceTooShort},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			instrument := payment.Instrument{Method: payment.MethodTransfer, Transfer: tc.transfer}

			info, err := instrument.Validate(testNow)
			assert.Nil(t, info)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInstrumentValidate_UnsupportedMethod(t *testing.T) {
	instrument := payment.Instrument{Method: payment.Method("crypto")}

	_, err := instrument.Validate(testNow)
	require.ErrorIs(t, err, payment.ErrUnsupportedMethod)
}
