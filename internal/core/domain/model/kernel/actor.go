package kernel

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role distinguishes the two kinds of authenticated callers.
type Role int

const (
	UnknownRole Role = iota
	Customer
	ShopOwner
)

func (r Role) String() string {
	switch r {
	case Customer:
		return "customer"
	case ShopOwner:
		return "shop_owner"
	default:
		return "unknown"
	}
}

// ParseRole maps the token claim value to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "customer", "user":
		return Customer, nil
	case "shop_owner", "owner":
		return ShopOwner, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

// Actor is the identity behind a command. Identity issuing and verification
// live outside this service; the HTTP adapter builds an Actor from a verified token.
type Actor struct {
	ID   UUID
	Role Role
}

// NewActor validates and builds an Actor.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if role != Customer && role != ShopOwner {
		return Actor{}, errs.NewValueIsInvalidError("role")
	}
	return Actor{ID: id, Role: role}, nil
}

func (a Actor) String() string {
	return fmt.Sprintf("%s:%s", a.Role, a.ID)
}
