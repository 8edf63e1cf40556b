package delivery_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC),
		kernel.SlotLunch,
	)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("creates pending delivery with normalized date", func(t *testing.T) {
		d := newTestDelivery(t)

		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.Nil(t, d.DriverID())
		assert.Nil(t, d.RouteID())
		assert.Nil(t, d.AssignedAt())
		assert.Nil(t, d.StartedAt())
		assert.Nil(t, d.CompletedAt())
		assert.True(t, d.IsActive())
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), d.Date())
		require.NoError(t, d.Validate())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		var zeroID kernel.UUID
		date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

		_, err := delivery.NewDelivery(zeroID, kernel.NewUUID(), date, kernel.SlotLunch)
		require.Error(t, err)

		_, err = delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), date, kernel.SlotUnknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), time.Time{}, kernel.SlotDinner)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDelivery_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var d delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})

	t.Run("nil delivery fails validation", func(t *testing.T) {
		var d *delivery.Delivery
		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

func TestDelivery_Assign(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("binds driver and advances to Assigned", func(t *testing.T) {
		d := newTestDelivery(t)
		driverID := kernel.NewUUID()

		require.NoError(t, d.Assign(driverID, now))

		assert.Equal(t, delivery.StatusAssigned, d.Status())
		require.NotNil(t, d.DriverID())
		assert.True(t, driverID.IsEqual(*d.DriverID()))
		require.NotNil(t, d.AssignedAt())
		assert.Equal(t, now, *d.AssignedAt())
	})

	t.Run("rejects assignment when not pending", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))

		err := d.Assign(kernel.NewUUID(), now)
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("rejects invalid driver id", func(t *testing.T) {
		d := newTestDelivery(t)
		var zeroID kernel.UUID

		require.Error(t, d.Assign(zeroID, now))
		assert.Equal(t, delivery.StatusPending, d.Status())
	})
}

func TestDelivery_AssignRoute(t *testing.T) {
	t.Run("binds route without touching status", func(t *testing.T) {
		d := newTestDelivery(t)
		routeID := kernel.NewUUID()

		require.NoError(t, d.AssignRoute(routeID))

		require.NotNil(t, d.RouteID())
		assert.True(t, routeID.IsEqual(*d.RouteID()))
		assert.Equal(t, delivery.StatusPending, d.Status())
	})

	t.Run("rejects routing a completed delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		now := time.Now()
		require.NoError(t, d.Advance(delivery.StatusCancelled, "", now))

		require.ErrorIs(t, d.AssignRoute(kernel.NewUUID()), errs.ErrConflict)
	})
}

func TestDelivery_Advance(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("walks the full happy path", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))

		require.NoError(t, d.Advance(delivery.StatusPickedUp, "", now))
		require.NotNil(t, d.StartedAt())

		require.NoError(t, d.Advance(delivery.StatusInTransit, "", now))
		require.NoError(t, d.Advance(delivery.StatusNearDestination, "", now))
		require.NoError(t, d.Advance(delivery.StatusDelivered, "left at reception", now))

		assert.Equal(t, delivery.StatusDelivered, d.Status())
		assert.Equal(t, "left at reception", d.Notes())
		require.NotNil(t, d.CompletedAt())
		assert.Equal(t, now, *d.CompletedAt())
		assert.False(t, d.IsActive())
	})

	t.Run("rejects skipping intermediate statuses", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))

		err := d.Advance(delivery.StatusInTransit, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, delivery.StatusAssigned, d.Status())
		assert.Nil(t, d.CompletedAt())
	})

	t.Run("rejects Assigned without a driver", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.Advance(delivery.StatusAssigned, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, delivery.StatusPending, d.Status())
	})

	t.Run("fails a pending delivery with completedAt set", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Advance(delivery.StatusFailed, "restaurant closed", now))

		assert.Equal(t, delivery.StatusFailed, d.Status())
		assert.Equal(t, "restaurant closed", d.Notes())
		require.NotNil(t, d.CompletedAt())
	})

	t.Run("cancels an in-flight delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))
		require.NoError(t, d.Advance(delivery.StatusPickedUp, "", now))

		require.NoError(t, d.Advance(delivery.StatusCancelled, "customer cancelled", now))

		assert.Equal(t, delivery.StatusCancelled, d.Status())
		require.NotNil(t, d.CompletedAt())
	})

	t.Run("rejects any move out of a terminal status", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Advance(delivery.StatusCancelled, "", now))

		err := d.Advance(delivery.StatusFailed, "", now)

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("keeps existing notes when none provided", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Advance(delivery.StatusFailed, "no driver showed up", now))

		assert.Equal(t, "no driver showed up", d.Notes())
	})
}

func TestDelivery_AutoComplete(t *testing.T) {
	now := time.Date(2025, 6, 15, 15, 30, 0, 0, time.UTC)

	t.Run("completes an assigned delivery and synthesizes a note", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Assign(kernel.NewUUID(), now))

		require.NoError(t, d.AutoComplete(now))

		assert.Equal(t, delivery.StatusDelivered, d.Status())
		require.NotNil(t, d.CompletedAt())
		assert.Equal(t, now, *d.CompletedAt())
		assert.Contains(t, d.Notes(), "Automatically completed")
		assert.Contains(t, d.Notes(), now.Format(time.RFC3339))
	})

	t.Run("completes straight from Pending", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.AutoComplete(now))

		assert.Equal(t, delivery.StatusDelivered, d.Status())
	})

	t.Run("rejects a terminal delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.AutoComplete(now))

		require.ErrorIs(t, d.AutoComplete(now), errs.ErrInvalidTransition)
	})
}

func TestRestoreDelivery(t *testing.T) {
	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 15, 13, 0, 0, 0, time.UTC)

	t.Run("restores a delivery with full state", func(t *testing.T) {
		driverID := kernel.NewUUID()
		routeID := kernel.NewUUID()

		d, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(),
			&routeID, &driverID,
			date, kernel.SlotDinner,
			delivery.StatusInTransit, "ring the bell",
			&now, &now, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusInTransit, d.Status())
		assert.Equal(t, "ring the bell", d.Notes())
		require.NoError(t, d.Validate())
	})

	t.Run("rejects non-pending delivery without driver", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, nil,
			date, kernel.SlotLunch,
			delivery.StatusAssigned, "",
			&now, nil, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects terminal delivery without completedAt", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, &driverID,
			date, kernel.SlotLunch,
			delivery.StatusDelivered, "",
			&now, &now, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects active delivery with completedAt", func(t *testing.T) {
		driverID := kernel.NewUUID()

		_, err := delivery.RestoreDelivery(
			kernel.NewUUID(), kernel.NewUUID(),
			nil, &driverID,
			date, kernel.SlotLunch,
			delivery.StatusPickedUp, "",
			&now, &now, &now,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
