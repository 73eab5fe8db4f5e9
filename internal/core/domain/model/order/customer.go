package order

import (
	"errors"
	"strings"

	"kitchen/internal/pkg/errs"
	"kitchen/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the contact captured with the order. Only the name is mandatory.
type Customer struct {
	name  string
	phone string
	email string

	guard guard.ConstructorGuard
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}

	return Customer{
		name:  name,
		phone: strings.TrimSpace(phone),
		email: strings.TrimSpace(email),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Phone() string {
	return c.phone
}

func (c Customer) Email() string {
	return c.email
}
