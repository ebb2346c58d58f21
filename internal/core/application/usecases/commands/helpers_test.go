package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func makeDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), "221B Baker Street", "+442072243688")
	require.NoError(t, err)
	return d
}

func makeOutForDelivery(t *testing.T, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d := makeDelivery(t)
	require.NoError(t, d.AssignDriver(driverID))
	require.NoError(t, d.TransitionTo(delivery.InTransit))
	require.NoError(t, d.TransitionTo(delivery.OutForDelivery))
	return d
}

func makeEligibleDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "Jane Smith", "+15550101", "bike")
	require.NoError(t, err)
	d.Verify()
	d.GoOnline()
	return d
}

func makeEngagedDriver(t *testing.T, deliveryID kernel.UUID) *driver.Driver {
	t.Helper()
	d := makeEligibleDriver(t)
	require.NoError(t, d.BeginDelivery(deliveryID))
	return d
}

func makeConfirmedOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	now := time.Now().UTC()
	o, err := order.RestoreOrder(id, order.StatusConfirmed, "742 Evergreen Terrace", "+15550199", now, now)
	require.NoError(t, err)
	return o
}
