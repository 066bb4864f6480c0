package payment

type Method string

const (
	MethodCard     Method = "card"
	MethodPayPal   Method = "paypal"
	MethodTransfer Method = "transfer"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodCard, MethodPayPal, MethodTransfer:
		return true
	default:
		return false
	}
}

func NewMethod(s string) (Method, error) {
	method := Method(s)
	if !method.IsValid() {
		return "", ErrUnsupportedMethod
	}
	return method, nil
}

type Network string

const (
	NetworkVisa       Network = "visa"
	NetworkMastercard Network = "mastercard"
	NetworkAmex       Network = "amex"
	NetworkDiscover   Network = "discover"
	NetworkUnknown    Network = "unknown"
)

func (n Network) String() string {
	return string(n)
}

// CardInfo is the only card-derived data the system retains: the full number
// never leaves the validator.
type CardInfo struct {
	Network Network
	Last4   string
}
