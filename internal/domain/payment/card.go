package payment

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrCardNumberLength   = errors.New("card number length is invalid")
	ErrCardNumberFormat   = errors.New("card number must contain only digits")
	ErrCardNumberChecksum = errors.New("card number is invalid")
	ErrExpiryFormat       = errors.New("expiry date format is invalid (MM/YY)")
	ErrCardExpired        = errors.New("card is expired")
	ErrInvalidCVV         = errors.New("cvv must be 3 or 4 digits")
	ErrInvalidHolderName  = errors.New("cardholder name is required")
)

var (
	digitsRegex = regexp.MustCompile(`^\d+$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvRegex    = regexp.MustCompile(`^[0-9]{3,4}$`)

	// Checked in priority order; the first match wins.
	networkPatterns = []struct {
		network Network
		pattern *regexp.Regexp
	}{
		{NetworkVisa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
		{NetworkMastercard, regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
		{NetworkAmex, regexp.MustCompile(`^3[47][0-9]{13}$`)},
		{NetworkDiscover, regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
	}
)

// ValidateCardNumber strips whitespace, checks length, digits and the Luhn
// checksum, then classifies the network. An unrecognized prefix is not a
// failure: the network is reported as unknown.
func ValidateCardNumber(raw string) (CardInfo, error) {
	clean := strings.Join(strings.Fields(raw), "")

	if len(clean) < 13 || len(clean) > 19 {
		return CardInfo{}, ErrCardNumberLength
	}

	if !digitsRegex.MatchString(clean) {
		return CardInfo{}, ErrCardNumberFormat
	}

	if !luhnCheck(clean) {
		return CardInfo{}, ErrCardNumberChecksum
	}

	return CardInfo{
		Network: classifyNetwork(clean),
		Last4:   clean[len(clean)-4:],
	}, nil
}

// luhnCheck doubles every second digit from the right, subtracting 9 from
// results above 9, and accepts iff the digit sum is divisible by 10.
func luhnCheck(num string) bool {
	sum := 0
	shouldDouble := false

	for i := len(num) - 1; i >= 0; i-- {
		digit := int(num[i] - '0')

		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		shouldDouble = !shouldDouble
	}

	return sum%10 == 0
}

func classifyNetwork(num string) Network {
	for _, p := range networkPatterns {
		if p.pattern.MatchString(num) {
			return p.network
		}
	}
	return NetworkUnknown
}

// ValidateExpiry expects MM/YY and compares two-digit years only, so there
// is no century disambiguation. Known limitation: correct through 2099.
func ValidateExpiry(raw string, now time.Time) error {
	m := expiryRegex.FindStringSubmatch(raw)
	if m == nil {
		return ErrExpiryFormat
	}

	month := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	year := int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	if year < currentYear || (year == currentYear && month < currentMonth) {
		return ErrCardExpired
	}

	return nil
}

func ValidateCVV(raw string) error {
	if !cvvRegex.MatchString(raw) {
		return ErrInvalidCVV
	}
	return nil
}

func ValidateHolderName(raw string) error {
	if len(strings.TrimSpace(raw)) < 2 {
		return ErrInvalidHolderName
	}
	return nil
}
