package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// ReconcileOutcome tells the caller what a webhook delivery did.
type ReconcileOutcome int

const (
	OutcomeApplied ReconcileOutcome = iota + 1
	OutcomeUnchanged
	OutcomeDuplicate
	OutcomeIgnored
	OutcomeUnknownOrder
)

func (o ReconcileOutcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeUnknownOrder:
		return "unknown_order"
	default:
		return "unknown"
	}
}

// SignatureVerifier checks a webhook body against its signature.
type SignatureVerifier interface {
	Verify(body []byte, signature string) error
}

// ReconcilePaymentCommandHandler verifies and applies payment gateway webhooks.
//
// Only payment status and paid amount change; fulfillment status never does.
// Deliveries are de-duplicated through the idempotency store, and the domain
// update itself is a no-op when repeated.
type ReconcilePaymentCommandHandler struct {
	uowFactory  OrderUoWFactory
	verifier    SignatureVerifier
	idempotency ports.IdempotencyStore
	logger      *slog.Logger
}

func NewReconcilePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	verifier SignatureVerifier,
	idempotency ports.IdempotencyStore,
	logger *slog.Logger,
) ReconcilePaymentCommandHandler {
	return ReconcilePaymentCommandHandler{
		uowFactory:  uowFactory,
		verifier:    verifier,
		idempotency: idempotency,
		logger:      logger.With("component", "payment-reconciler"),
	}
}

// Handle returns payment.ErrInvalidSignature for a body that does not match its
// signature; nothing is read or written in that case.
func (h ReconcilePaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcilePaymentCommand,
) (ReconcileOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	if err := h.verifier.Verify(cmd.Body(), cmd.Signature()); err != nil {
		h.logger.WarnContext(ctx, "rejected webhook with invalid signature", "error", err)
		return 0, err
	}

	event, err := payment.ParseEvent(cmd.Body())
	if err != nil {
		return 0, err
	}
	if !event.Handled() {
		h.logger.InfoContext(ctx, "ignoring webhook event", "event", string(event.Type))
		return OutcomeIgnored, nil
	}

	key := cmd.EventID()
	if key == "" {
		key = event.Key()
	}

	first, err := h.idempotency.Claim(ctx, key)
	if err != nil {
		return 0, err
	}
	if !first {
		return OutcomeDuplicate, nil
	}

	outcome, err := h.apply(ctx, event)
	if err != nil {
		h.release(ctx, key)
		return 0, err
	}
	if outcome == OutcomeUnknownOrder {
		// The order may not be visible yet; a redelivery must be processed again.
		h.release(ctx, key)
	}
	return outcome, nil
}

func (h ReconcilePaymentCommandHandler) release(ctx context.Context, key string) {
	if err := h.idempotency.Release(ctx, key); err != nil {
		h.logger.ErrorContext(ctx, "failed to release webhook claim", "key", key, "error", err)
	}
}

func (h ReconcilePaymentCommandHandler) apply(ctx context.Context, event payment.Event) (ReconcileOutcome, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	o, err := orders.GetByGatewayOrderID(ctx, event.GatewayOrderID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		h.logger.WarnContext(ctx, "webhook for unknown gateway order",
			"gateway_order_id", event.GatewayOrderID, "event", string(event.Type))
		return OutcomeUnknownOrder, nil
	}
	if err != nil {
		return 0, err
	}

	var changed bool
	switch event.Type {
	case payment.PaymentCaptured:
		changed = o.MarkPaid()
	case payment.PaymentFailed:
		changed = o.MarkPaymentFailed()
	}
	if !changed {
		return OutcomeUnchanged, nil
	}

	if err = orders.UpdatePayment(ctx, o); err != nil {
		return 0, err
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.logger.InfoContext(ctx, "payment reconciled",
		"order_id", o.ID().String(),
		"payment_status", o.PaymentStatus().String(),
		"status", o.Status().String(),
	)
	return OutcomeApplied, nil
}

