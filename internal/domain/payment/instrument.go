package payment

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrUnsupportedMethod    = errors.New("unsupported payment method")
	ErrCardDataRequired     = errors.New("card data is required")
	ErrCardFieldsRequired   = errors.New("all card fields are required")
	ErrPayPalDataRequired   = errors.New("paypal data is required")
	ErrInvalidPayPalEmail   = errors.New("paypal email is invalid")
	ErrTransferDataRequired = errors.New("transfer data is required")
	ErrReferenceTooShort    = errors.New("transfer reference must be at least 5 characters")
)

var paypalEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CardData struct {
	Number     string
	Expiry     string
	CVV        string
	HolderName string
}

type PayPalData struct {
	Email string
}

type TransferData struct {
	Reference string
}

// Instrument is a tagged variant over the supported payment payloads.
// Exactly one of the data fields is expected to be set, matching Method.
type Instrument struct {
	Method   Method
	Card     *CardData
	PayPal   *PayPalData
	Transfer *TransferData
}

// Validate checks instrument well-formedness only; it never authorizes a
// charge. Card sub-checks run in a fixed order (number, expiry, cvv, name)
// and the first failure wins. On success the returned CardInfo carries the
// network and last four digits for card payments, nil otherwise.
func (i Instrument) Validate(now time.Time) (*CardInfo, error) {
	switch i.Method {
	case MethodCard:
		return i.validateCard(now)
	case MethodPayPal:
		return nil, i.validatePayPal()
	case MethodTransfer:
		return nil, i.validateTransfer()
	default:
		return nil, ErrUnsupportedMethod
	}
}

func (i Instrument) validateCard(now time.Time) (*CardInfo, error) {
	if i.Card == nil {
		return nil, ErrCardDataRequired
	}
	if i.Card.Number == "" || i.Card.Expiry == "" || i.Card.CVV == "" || i.Card.HolderName == "" {
		return nil, ErrCardFieldsRequired
	}

	info, err := ValidateCardNumber(i.Card.Number)
	if err != nil {
		return nil, err
	}
	if err := ValidateExpiry(i.Card.Expiry, now); err != nil {
		return nil, err
	}
	if err := ValidateCVV(i.Card.CVV); err != nil {
		return nil, err
	}
	if err := ValidateHolderName(i.Card.HolderName); err != nil {
		return nil, err
	}

	return &info, nil
}

func (i Instrument) validatePayPal() error {
	if i.PayPal == nil {
		return ErrPayPalDataRequired
	}
	return ValidatePayPalEmail(i.PayPal.Email)
}

func (i Instrument) validateTransfer() error {
	if i.Transfer == nil {
		return ErrTransferDataRequired
	}
	return ValidateTransferReference(i.Transfer.Reference)
}

func ValidatePayPalEmail(email string) error {
	if !paypalEmailRegex.MatchString(email) {
		return ErrInvalidPayPalEmail
	}
	return nil
}

func ValidateTransferReference(reference string) error {
	if len(strings.TrimSpace(reference)) < 5 {
		return ErrReferenceTooShort
	}
	return nil
}
