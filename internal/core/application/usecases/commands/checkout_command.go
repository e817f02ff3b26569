package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand turns the user's cart into an order. It carries no prices:
// totals are always derived on the server.
//
// Example:
//
//	address, _ := order.NewAddress(name, phone, line, city, pincode, state, location)
//	cmd, err := NewCheckoutCommand(actor.ID, "cod", address, "leave at door", true)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	userID        kernel.UUID
	paymentMethod order.PaymentMethod
	address       order.Address
	note          string
	claimNewUser  bool

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(
	userID kernel.UUID,
	paymentMethod string,
	address order.Address,
	note string,
	claimNewUser bool,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		note:         strings.TrimSpace(note),
		claimNewUser: claimNewUser,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setAddress(address),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CheckoutCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c CheckoutCommand) Address() order.Address {
	return c.address
}

func (c CheckoutCommand) Note() string {
	return c.note
}

// ClaimNewUser asks for the first-order offer. Eligibility is still checked.
func (c CheckoutCommand) ClaimNewUser() bool {
	return c.claimNewUser
}

func (c *CheckoutCommand) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user_id", err)
	}
	c.userID = id
	return nil
}

func (c *CheckoutCommand) setPaymentMethod(method string) error {
	parsed, err := order.ParsePaymentMethod(method)
	if err != nil {
		return err
	}
	c.paymentMethod = parsed
	return nil
}

func (c *CheckoutCommand) setAddress(address order.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery_address", err)
	}
	c.address = address
	return nil
}
