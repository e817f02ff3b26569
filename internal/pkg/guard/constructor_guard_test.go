package guard_test

import (
	"errors"
	"testing"

	"marketplace/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed guard passes with custom and nil errors", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the supplied error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValue(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}
	errQuantityNotConstructed := errors.New("quantity must be created via newQuantity")

	newQuantity := func(v int) (quantity, error) {
		if v <= 0 {
			return quantity{}, errors.New("quantity must be positive")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor output validates", func(t *testing.T) {
		q, err := newQuantity(3)
		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQuantityNotConstructed))
	})

	t.Run("failed constructor returns an unusable zero value", func(t *testing.T) {
		q, err := newQuantity(0)
		require.Error(t, err)
		require.ErrorIs(t, q.guard.Validate(errQuantityNotConstructed), errQuantityNotConstructed)
	})

	t.Run("copies keep the constructed flag", func(t *testing.T) {
		q, _ := newQuantity(1)
		copied := q
		require.NoError(t, copied.guard.Validate(errQuantityNotConstructed))
	})
}
