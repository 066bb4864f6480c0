//go:build unit || e2e

package builder

import (
	reqdto "bookstore-api/internal/handler/dto/request"

	"github.com/google/uuid"
)

// PurchaseRequestBuilder defaults to a valid visa card payment.
type PurchaseRequestBuilder struct {
	BookID   *uuid.UUID
	Method   *string
	Card     *reqdto.CardPayload
	PayPal   *reqdto.PayPalPayload
	Transfer *reqdto.TransferPayload
}

func NewPurchaseRequestBuilder() *PurchaseRequestBuilder {
	bookID := uuid.New()
	method := "card"
	return &PurchaseRequestBuilder{
		BookID: &bookID,
		Method: &method,
		Card: &reqdto.CardPayload{
			Number:     "4539148803436467",
			Expiry:     "12/30",
			CVV:        "123",
			HolderName: "JOHN DOE",
		},
	}
}

func (p *PurchaseRequestBuilder) BuildDTO() reqdto.CreatePurchaseRequest {
	return reqdto.CreatePurchaseRequest{
		BookID:   p.BookID,
		Method:   p.Method,
		Card:     p.Card,
		PayPal:   p.PayPal,
		Transfer: p.Transfer,
	}
}

func (p *PurchaseRequestBuilder) WithBookID(id uuid.UUID) *PurchaseRequestBuilder {
	p.BookID = &id
	return p
}

func (p *PurchaseRequestBuilder) WithoutBookID() *PurchaseRequestBuilder {
	p.BookID = nil
	return p
}

func (p *PurchaseRequestBuilder) WithMethod(method string) *PurchaseRequestBuilder {
	p.Method = &method
	return p
}

func (p *PurchaseRequestBuilder) WithoutMethod() *PurchaseRequestBuilder {
	p.Method = nil
	return p
}

func (p *PurchaseRequestBuilder) WithCard(card *reqdto.CardPayload) *PurchaseRequestBuilder {
	p.Card = card
	return p
}

func (p *PurchaseRequestBuilder) AsPayPal(email string) *PurchaseRequestBuilder {
	method := "paypal"
	p.Method = &method
	p.Card = nil
	p.PayPal = &reqdto.PayPalPayload{Email: email}
	return p
}

func (p *PurchaseRequestBuilder) AsTransfer(reference string) *PurchaseRequestBuilder {
	method := "transfer"
	p.Method = &method
	p.Card = nil
	p.Transfer = &reqdto.TransferPayload{Reference: reference}
	return p
}
