package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand(t *testing.T) {
	userID, productID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewAddCartItemCommand(userID, productID, 2)
	require.NoError(t, err)
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, productID, cmd.ProductID())
	assert.Equal(t, 2, cmd.Quantity())

	_, err = commands.NewAddCartItemCommand(userID, productID, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewAddCartItemCommand(kernel.UUID{}, kernel.UUID{}, -1)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewUpdateCartItemCommand_NegativeQuantityRemoves(t *testing.T) {
	cmd, err := commands.NewUpdateCartItemCommand(kernel.NewUUID(), kernel.NewUUID(), -3)
	require.NoError(t, err)
	assert.True(t, cmd.Removes())
}

func TestNewCheckoutCommand(t *testing.T) {
	userID := kernel.NewUUID()
	address := testAddress(t)

	cmd, err := commands.NewCheckoutCommand(userID, "cod", address, "  gate code 42  ", false)
	require.NoError(t, err)
	assert.Equal(t, order.CashOnDelivery, cmd.PaymentMethod())
	assert.Equal(t, "gate code 42", cmd.Note())
	assert.False(t, cmd.ClaimNewUser())
	assert.Equal(t, "Bengaluru", cmd.Address().City())

	_, err = commands.NewCheckoutCommand(userID, "", address, "", false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewCheckoutCommand(userID, "bitcoin", address, "", false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewCheckoutCommand(userID, "online", order.Address{}, "", false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewChangeOrderStatusCommand(t *testing.T) {
	ownerID, orderID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewChangeOrderStatusCommand(ownerID, orderID, "packed")
	require.NoError(t, err)
	assert.Equal(t, order.Packed, cmd.Status())
	assert.Equal(t, kernel.Actor{ID: ownerID, Role: kernel.ShopOwner}, cmd.Actor())

	_, err = commands.NewChangeOrderStatusCommand(ownerID, orderID, "teleported")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewCancelOrderCommand(t *testing.T) {
	userID, orderID := kernel.NewUUID(), kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(userID, orderID, true)
	require.NoError(t, err)
	assert.Equal(t, kernel.Customer, cmd.Actor().Role)
	assert.True(t, cmd.MoveToWishlist())

	_, err = commands.NewCancelOrderCommand(userID, kernel.UUID{}, false)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewReconcilePaymentCommand(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)

	cmd, err := commands.NewReconcilePaymentCommand(body, " abc ", "")
	require.NoError(t, err)
	assert.Equal(t, "abc", cmd.Signature())

	body[0] = '['
	assert.Equal(t, byte('{'), cmd.Body()[0])

	_, err = commands.NewReconcilePaymentCommand(nil, "abc", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewRelayNotificationsCommand(t *testing.T) {
	_, err := commands.NewRelayNotificationsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	cmd, err := commands.NewRelayNotificationsCommand(100)
	require.NoError(t, err)
	assert.Equal(t, 100, cmd.BatchSize())
}

func TestZeroValueCommandsAreRejected(t *testing.T) {
	uow := &MockUoW{}
	factory := newUoWFactory(uow)

	require.ErrorIs(t,
		commands.NewDeleteOrderCommandHandler(orderFactory{factory}).Handle(t.Context(), commands.DeleteOrderCommand{}),
		commands.ErrDeleteOrderCommandIsNotConstructed)
	_, err := commands.NewChangeOrderStatusCommandHandler(fulfillmentFactory{factory}, discardLogger).
		Handle(t.Context(), commands.ChangeOrderStatusCommand{})
	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	_, err = commands.NewRelayNotificationsCommandHandler(outboxFactory{factory}, &MockPublisher{}).
		Handle(t.Context(), commands.RelayNotificationsCommand{})
	require.ErrorIs(t, err, commands.ErrRelayNotificationsCommandIsNotConstructed)

	uow.AssertNotCalled(t, "Begin", t.Context())
}
