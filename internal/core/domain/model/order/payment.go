package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentStatus tracks money collection independently from fulfillment.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
)

func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "pending"
	case PaymentPaid:
		return "paid"
	case PaymentFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch s {
	case "pending":
		return PaymentPending, nil
	case "paid":
		return PaymentPaid, nil
	case "failed":
		return PaymentFailed, nil
	default:
		return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
			"payment_status", fmt.Errorf("%q is not a valid payment status", s))
	}
}

// PaymentMethod is chosen by the customer at checkout.
type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "cod"
	Online         PaymentMethod = "online"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case CashOnDelivery, Online:
		return PaymentMethod(s), nil
	case "":
		return "", errs.NewValueIsRequiredError("payment_method")
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment_method", fmt.Errorf("%q must be one of cod, online", s))
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
