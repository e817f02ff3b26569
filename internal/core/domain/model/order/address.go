package order

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the delivery destination captured at checkout. Coordinates are
// mandatory because the delivery fee depends on them.
type Address struct {
	name     string
	phone    string
	line     string
	city     string
	pincode  string
	state    string
	location kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewAddress(name, phone, line, city, pincode, state string, location kernel.GeoPoint) (Address, error) {
	address := Address{
		name:    strings.TrimSpace(name),
		phone:   strings.TrimSpace(phone),
		line:    strings.TrimSpace(line),
		city:    strings.TrimSpace(city),
		pincode: strings.TrimSpace(pincode),
		state:   strings.TrimSpace(state),
		guard:   guard.NewConstructorGuard(),
	}

	var problems []error
	for _, field := range []struct{ name, value string }{
		{"name", address.name},
		{"phone", address.phone},
		{"address_line", address.line},
		{"city", address.city},
		{"pincode", address.pincode},
	} {
		if field.value == "" {
			problems = append(problems, errs.NewValueIsRequiredError(field.name))
		}
	}
	if err := location.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("location", err))
	}
	if err := errors.Join(problems...); err != nil {
		return Address{}, err
	}

	address.location = location
	return address, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Name() string { return a.name }
func (a Address) Phone() string { return a.phone }
func (a Address) Line() string { return a.line }
func (a Address) City() string { return a.city }
func (a Address) Pincode() string { return a.pincode }
func (a Address) State() string { return a.state }

func (a Address) Location() kernel.GeoPoint {
	return a.location
}

// ProfileSnapshot is the copy of the customer's saved profile embedded in the order.
// Later profile edits do not change it.
type ProfileSnapshot struct {
	Name    string
	Phone   string
	Address string
	City    string
	Pincode string
	State   string
}
