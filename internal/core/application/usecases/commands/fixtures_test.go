package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/route"

	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()

	biryani, err := order.NewItem(kernel.NewUUID(), "Chicken Biryani", 2, 3500)
	require.NoError(t, err)
	return []order.Item{biryani}
}

func testSchedule() []commands.ScheduleEntry {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	return []commands.ScheduleEntry{
		{Date: date, Slot: kernel.SlotLunch},
		{Date: date, Slot: kernel.SlotDinner},
	}
}

func testPendingDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), kernel.SlotLunch,
	)
	require.NoError(t, err)
	return d
}

func testAvailableDriver(t *testing.T) *driver.Driver {
	t.Helper()

	drv, err := driver.NewDriver(kernel.NewUUID(), "Alice", "+971501234567", "bike", 5)
	require.NoError(t, err)
	return drv
}

func testRoute(t *testing.T, maxDeliveries int) *route.Route {
	t.Helper()

	rt, err := route.NewRoute(kernel.NewUUID(), kernel.NewUUID(), "Marina Loop", 45, maxDeliveries)
	require.NoError(t, err)
	return rt
}

func testAssignedDelivery(t *testing.T, drv *driver.Driver) *delivery.Delivery {
	t.Helper()

	d := testPendingDelivery(t)
	require.NoError(t, drv.Reserve())
	require.NoError(t, d.Assign(drv.ID(), time.Now()))
	return d
}
