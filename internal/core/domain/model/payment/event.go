package payment

import (
	"encoding/json"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// EventType is the gateway's event name.
type EventType string

const (
	PaymentCaptured EventType = "payment.captured"
	PaymentFailed   EventType = "payment.failed"
)

// Event is the part of a gateway webhook the marketplace acts on.
type Event struct {
	Type           EventType
	PaymentID      string
	GatewayOrderID string
	Amount         int64
}

type envelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Amount  int64  `json:"amount"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// ParseEvent decodes a webhook body. Unknown event types parse successfully and
// are reported by Handled.
func ParseEvent(body []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Event{}, errs.NewValueIsInvalidErrorWithCause("webhook body", err)
	}
	if env.Event == "" {
		return Event{}, errs.NewValueIsRequiredError("event")
	}

	entity := env.Payload.Payment.Entity
	event := Event{
		Type:           EventType(env.Event),
		PaymentID:      entity.ID,
		GatewayOrderID: entity.OrderID,
		Amount:         entity.Amount,
	}
	if event.Handled() && event.GatewayOrderID == "" {
		return Event{}, errs.NewValueIsRequiredError("payload.payment.entity.order_id")
	}
	return event, nil
}

// Handled reports whether the marketplace reacts to this event type.
func (e Event) Handled() bool {
	return e.Type == PaymentCaptured || e.Type == PaymentFailed
}

// Key identifies the delivery for de-duplication when the gateway sends no event id.
func (e Event) Key() string {
	return fmt.Sprintf("%s:%s:%s", e.Type, e.GatewayOrderID, e.PaymentID)
}
