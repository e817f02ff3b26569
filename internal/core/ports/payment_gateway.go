package ports

import (
	"context"
	"errors"
)

// ErrGatewayRejected is returned when the payment gateway refuses a request.
var ErrGatewayRejected = errors.New("payment gateway rejected the request")

// GatewayOrder is the payment gateway's record of a payment to collect.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// PaymentGateway creates payment orders. Amount is in the currency's minor unit.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (GatewayOrder, error)
	KeyID() string
}
