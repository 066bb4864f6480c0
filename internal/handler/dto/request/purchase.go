package request

import (
	"bookstore-api/internal/domain/payment"

	"github.com/google/uuid"
)

type CardPayload struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	HolderName string `json:"holder_name"`
}

type PayPalPayload struct {
	Email string `json:"email"`
}

type TransferPayload struct {
	Reference string `json:"reference"`
}

// CreatePurchaseRequest keeps book id and method as pointers so the usecase
// can tell a missing field apart from a zero value.
type CreatePurchaseRequest struct {
	BookID   *uuid.UUID       `json:"book_id"`
	Method   *string          `json:"method"`
	Card     *CardPayload     `json:"card,omitempty"`
	PayPal   *PayPalPayload   `json:"paypal,omitempty"`
	Transfer *TransferPayload `json:"transfer,omitempty"`
}

func (r CreatePurchaseRequest) ToInstrument(method payment.Method) payment.Instrument {
	instrument := payment.Instrument{Method: method}

	if r.Card != nil {
		instrument.Card = &payment.CardData{
			Number:     r.Card.Number,
			Expiry:     r.Card.Expiry,
			CVV:        r.Card.CVV,
			HolderName: r.Card.HolderName,
		}
	}
	if r.PayPal != nil {
		instrument.PayPal = &payment.PayPalData{Email: r.PayPal.Email}
	}
	if r.Transfer != nil {
		instrument.Transfer = &payment.TransferData{Reference: r.Transfer.Reference}
	}

	return instrument
}
