package commands_test

import (
	"testing"

	"kitchen/internal/core/application/usecases/commands"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	items := []commands.CartItem{{MenuItemID: 1, Quantity: 2}, {MenuItemID: 7, Quantity: 1}}

	cmd, err := commands.NewCreateOrderCommand(items, commands.CustomerInfo{Name: " Ann ", Phone: "555"},
		"dine_in", "", order.Extras{SpecialInstructions: "no onions"})

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, items, cmd.Items())
	assert.Equal(t, "Ann", cmd.Customer().Name())
	assert.Equal(t, order.DineIn, cmd.OrderType())
	assert.Equal(t, order.Normal, cmd.Priority())
	assert.Equal(t, "no onions", cmd.Extras().SpecialInstructions)
}

func TestNewCreateOrderCommand_ParsesPriorityCaseInsensitively(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand([]commands.CartItem{{MenuItemID: 1, Quantity: 1}},
		commands.CustomerInfo{Name: "Ann"}, "Pickup", "high", order.Extras{})

	require.NoError(t, err)
	assert.Equal(t, order.Pickup, cmd.OrderType())
	assert.Equal(t, order.High, cmd.Priority())
}

func TestNewCreateOrderCommand_EmptyCart(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(nil, commands.CustomerInfo{Name: "Ann"}, "PICKUP", "", order.Extras{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateOrderCommand_InvalidQuantity(t *testing.T) {
	_, err := commands.NewCreateOrderCommand([]commands.CartItem{{MenuItemID: 1, Quantity: 0}},
		commands.CustomerInfo{Name: "Ann"}, "PICKUP", "", order.Extras{})

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "0 is not greater than 0")
}

func TestNewCreateOrderCommand_JoinsAllErrors(t *testing.T) {
	_, err := commands.NewCreateOrderCommand([]commands.CartItem{{MenuItemID: 0, Quantity: -1}},
		commands.CustomerInfo{}, "takeaway", "asap", order.Extras{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "menuItemId")
	assert.Contains(t, err.Error(), "quantity")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_ZeroValueIsNotConstructed(t *testing.T) {
	err := commands.CreateOrderCommand{}.Validate()

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
