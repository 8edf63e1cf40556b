package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdvanceDeliveryCommand(t *testing.T) {
	deliveryID := kernel.NewUUID()

	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewAdvanceDeliveryCommand(deliveryID, delivery.StatusPickedUp, "rang the bell")

		require.NoError(t, err)
		assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
		assert.Equal(t, delivery.StatusPickedUp, cmd.Target())
		assert.Equal(t, "rang the bell", cmd.Notes())
		require.NoError(t, cmd.Validate())
	})

	t.Run("unknown target status", func(t *testing.T) {
		_, err := commands.NewAdvanceDeliveryCommand(deliveryID, delivery.StatusUnknown, "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AdvanceDeliveryCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceDeliveryCommandIsNotConstructed)
	})
}

func TestNewAssignDriverCommand(t *testing.T) {
	deliveryID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	t.Run("valid input without route", func(t *testing.T) {
		cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, nil)

		require.NoError(t, err)
		assert.True(t, cmd.DeliveryID().IsEqual(deliveryID))
		assert.True(t, cmd.DriverID().IsEqual(driverID))
		assert.Nil(t, cmd.RouteID())
		require.NoError(t, cmd.Validate())
	})

	t.Run("valid input with route", func(t *testing.T) {
		routeID := kernel.NewUUID()
		cmd, err := commands.NewAssignDriverCommand(deliveryID, driverID, &routeID)

		require.NoError(t, err)
		require.NotNil(t, cmd.RouteID())
		assert.True(t, cmd.RouteID().IsEqual(routeID))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AssignDriverCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAssignDriverCommandIsNotConstructed)
	})
}
