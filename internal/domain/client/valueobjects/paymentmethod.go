package valueobjects

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCard         PaymentMethod = "Card"
	PaymentMethodUPI          PaymentMethod = "UPI"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCard,
	PaymentMethodUPI,
	PaymentMethodBankTransfer,
}

// ParsePaymentMethod is case-insensitive and also accepts "bank_transfer".
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	v := strings.ReplaceAll(strings.TrimSpace(value), "_", " ")
	for _, m := range PaymentMethods {
		if strings.EqualFold(v, string(m)) {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, value)
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}
