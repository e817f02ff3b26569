package commands

import (
	"context"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const paymentCurrency = "INR"

var paiseInRupee = decimal.NewFromInt(100)

// PaymentSession is what the client needs to open the gateway checkout.
type PaymentSession struct {
	OrderID        kernel.UUID
	Amount         decimal.Decimal
	Currency       string
	GatewayOrderID string
	KeyID          string
}

// CreatePaymentCommandHandler registers the order's total with the payment
// gateway and stores the gateway reference used later by webhooks.
type CreatePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.PaymentGateway
}

func NewCreatePaymentCommandHandler(uowFactory OrderUoWFactory, gateway ports.PaymentGateway) CreatePaymentCommandHandler {
	return CreatePaymentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

func (h CreatePaymentCommandHandler) Handle(ctx context.Context, cmd CreatePaymentCommand) (PaymentSession, error) {
	if err := cmd.Validate(); err != nil {
		return PaymentSession{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PaymentSession{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := loadOrder(ctx, uow, cmd.OrderID())
	if err != nil {
		return PaymentSession{}, err
	}
	if !o.BelongsTo(cmd.UserID()) {
		return PaymentSession{}, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}
	if err = o.EnsurePayable(); err != nil {
		return PaymentSession{}, err
	}

	amount := o.Total()

	// Retries reuse the started payment so webhooks for it still find the order.
	if reference := o.GatewayOrderID(); reference != "" {
		return h.session(o.ID(), amount, reference), nil
	}

	gatewayOrder, err := h.gateway.CreateOrder(ctx, amount.Mul(paiseInRupee).IntPart(), paymentCurrency, o.Number())
	if err != nil {
		return PaymentSession{}, fmt.Errorf("create gateway order: %w", err)
	}

	if err = o.AttachGatewayOrder(gatewayOrder.ID); err != nil {
		return PaymentSession{}, err
	}
	if err = uow.OrderRepository().UpdatePayment(ctx, o); err != nil {
		return PaymentSession{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return PaymentSession{}, err
	}

	return h.session(o.ID(), amount, gatewayOrder.ID), nil
}

func (h CreatePaymentCommandHandler) session(orderID kernel.UUID, amount decimal.Decimal, reference string) PaymentSession {
	return PaymentSession{
		OrderID:        orderID,
		Amount:         amount,
		Currency:       paymentCurrency,
		GatewayOrderID: reference,
		KeyID:          h.gateway.KeyID(),
	}
}
