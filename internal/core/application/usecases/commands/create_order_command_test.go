package commands_test

import (
	"testing"

	"github.com/spantra1997/SecondServe/internal/core/application/usecases/commands"
	"github.com/spantra1997/SecondServe/internal/core/domain/model/kernel"
	"github.com/spantra1997/SecondServe/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	donationID := kernel.NewUUID()
	recipientID := kernel.NewUUID()
	location := testLocation(t)

	cmd, err := commands.NewCreateOrderCommand(
		orderID, donationID, recipientID, []string{"vegan"}, location)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, donationID, cmd.DonationID())
	assert.Equal(t, recipientID, cmd.RecipientID())
	assert.Equal(t, []string{"vegan"}, cmd.DietaryPreferences())
	assert.True(t, cmd.DeliveryLocation().IsEqual(location))
}

func TestNewCreateOrderCommand_InvalidIDs(t *testing.T) {
	location := testLocation(t)

	_, err := commands.NewCreateOrderCommand(
		kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), nil, location)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), nil, location)
	require.Error(t, err)

	_, err = commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, nil, location)
	require.Error(t, err)
}

func TestNewCreateOrderCommand_InvalidLocation(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, kernel.Location{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
}
