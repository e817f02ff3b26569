package commands

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrReconcilePaymentCommandIsNotConstructed = errors.New(
	"ReconcilePaymentCommand must be created via NewReconcilePaymentCommand constructor",
)

// ReconcilePaymentCommand is one webhook delivery from the payment gateway.
// The body is kept raw because the signature covers its exact bytes.
type ReconcilePaymentCommand struct {
	body      []byte
	signature string
	eventID   string

	guard guard.ConstructorGuard
}

// NewReconcilePaymentCommand builds the command. eventID is the gateway's delivery
// id when it sends one; it may be empty.
func NewReconcilePaymentCommand(body []byte, signature, eventID string) (ReconcilePaymentCommand, error) {
	if len(body) == 0 {
		return ReconcilePaymentCommand{}, errs.NewValueIsRequiredError("body")
	}
	return ReconcilePaymentCommand{
		body:      append([]byte(nil), body...),
		signature: strings.TrimSpace(signature),
		eventID:   strings.TrimSpace(eventID),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ReconcilePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReconcilePaymentCommandIsNotConstructed)
}

func (c ReconcilePaymentCommand) Body() []byte {
	return c.body
}

func (c ReconcilePaymentCommand) Signature() string {
	return c.signature
}

func (c ReconcilePaymentCommand) EventID() string {
	return c.eventID
}
