package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// ErrInvalidTransition is the rule broken by a status change outside the transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the fulfillment state of an order.
//
// State transitions:
//
//	Pending ──> Accepted ──> Packed ──> Shipped ──> Delivered
//	   │           │           │
//	   └───────────┴───────────┴──────> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Accepted
	Packed
	Shipped
	Delivered
	Cancelled
)

// transitions maps the current status to the statuses it may move to.
// It is consulted for authorization, validation and the next_statuses hint alike.
var transitions = map[Status][]Status{
	Pending:   {Accepted, Cancelled},
	Accepted:  {Packed, Cancelled},
	Packed:    {Shipped, Cancelled},
	Shipped:   {Delivered},
	Delivered: {},
	Cancelled: {},
}

var statusNames = map[Status]string{
	Unknown:   "unknown",
	Pending:   "pending",
	Accepted:  "accepted",
	Packed:    "packed",
	Shipped:   "shipped",
	Delivered: "delivered",
	Cancelled: "cancelled",
}

// ParseStatus converts the persisted/API representation into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that s is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// NextStatuses returns the statuses reachable from s in one step.
func (s Status) NextStatuses() []Status {
	return append([]Status(nil), transitions[s]...)
}

// CanTransitionTo reports whether next is listed for s in the transition table.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// ValidateTransition returns a business rule violation wrapping ErrInvalidTransition
// when next is not reachable from s.
func (s Status) ValidateTransition(next Status) error {
	if !s.CanTransitionTo(next) {
		return errs.NewBusinessRuleViolationError(
			ErrInvalidTransition,
			fmt.Sprintf("invalid status change: %s → %s", s, next),
		)
	}
	return nil
}
