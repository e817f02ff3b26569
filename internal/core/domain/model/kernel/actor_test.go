package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := kernel.ParseRole("customer")
	require.NoError(t, err)
	assert.Equal(t, kernel.Customer, r)

	r, err = kernel.ParseRole("shop_owner")
	require.NoError(t, err)
	assert.Equal(t, kernel.ShopOwner, r)

	_, err = kernel.ParseRole("admin")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewActor(t *testing.T) {
	_, err := kernel.NewActor(kernel.UUID{}, kernel.Customer)
	require.Error(t, err)

	_, err = kernel.NewActor(kernel.NewUUID(), kernel.UnknownRole)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	a, err := kernel.NewActor(kernel.NewUUID(), kernel.ShopOwner)
	require.NoError(t, err)
	assert.Equal(t, kernel.ShopOwner, a.Role)
}
