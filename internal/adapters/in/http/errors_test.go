package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"required", errs.NewValueIsRequiredError("lat"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"out of range", errs.NewValueIsOutOfRangeError("quantity", 0, 1, 99), http.StatusBadRequest},
		{"joined validation errors", errors.Join(
			errs.NewValueIsRequiredError("name"),
			errs.NewValueIsRequiredError("city"),
		), http.StatusBadRequest},
		{"not found", errs.NewObjectNotFoundError("order", "42"), http.StatusNotFound},
		{"access denied", errs.NewAccessDeniedError("shop_owner", "order"), http.StatusForbidden},
		{"empty cart", errs.NewBusinessRuleViolationError(cart.ErrEmptyCart, ""), http.StatusBadRequest},
		{"invalid transition", order.Delivered.ValidateTransition(order.Pending), http.StatusBadRequest},
		{"profile missing", errs.NewBusinessRuleViolationError(services.ErrProfileMissing, ""), http.StatusUnprocessableEntity},
		{"stale write", errs.NewConcurrencyConflictError("order", "42"), http.StatusConflict},
		{"duplicate", errs.NewObjectAlreadyExistsError("order_number", "ORD1"), http.StatusConflict},
		{"bad signature", payment.ErrInvalidSignature, http.StatusBadRequest},
		{"gateway refused", fmt.Errorf("create gateway order: %w", ports.ErrGatewayRejected), http.StatusBadGateway},
		{"echo error", echo.ErrUnauthorized, http.StatusUnauthorized},
		{"anything else", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}

func TestMessageForHidesInternalErrors(t *testing.T) {
	assert.Equal(t, "Internal Server Error", messageFor(errors.New("pq: password authentication failed"), 500))
	assert.Equal(t, "value is required: lat", messageFor(errs.NewValueIsRequiredError("lat"), 400))
	assert.Equal(t, "Unauthorized", messageFor(echo.ErrUnauthorized, 401))
}
