// Package notification models the message a customer receives when their order
// is cancelled. Notifications are written to an outbox in the same transaction
// as the cancellation and delivered later.
package notification

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// Notification is addressed to one user about one order.
type Notification struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	OrderID   kernel.UUID
	Message   string
	CreatedAt time.Time
}

func New(userID, orderID kernel.UUID, message string, createdAt time.Time) (Notification, error) {
	var problems []error
	if err := userID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("user_id", err))
	}
	if err := orderID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("order_id", err))
	}
	if message == "" {
		problems = append(problems, errs.NewValueIsRequiredError("message"))
	}
	if err := errors.Join(problems...); err != nil {
		return Notification{}, err
	}

	return Notification{
		ID:        kernel.NewUUID(),
		UserID:    userID,
		OrderID:   orderID,
		Message:   message,
		CreatedAt: createdAt.UTC(),
	}, nil
}

// CancelledByShopOwner is the text sent when a shop owner cancels.
func CancelledByShopOwner(orderNumber string) string {
	return fmt.Sprintf("Your order %s has been cancelled by the shop owner.", orderNumber)
}

// CancelledByCustomer confirms a cancellation the customer requested.
func CancelledByCustomer(orderNumber string) string {
	return fmt.Sprintf("Your order %s has been cancelled.", orderNumber)
}
