package commands

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// SyncConfirmedOrdersCommandHandler backfills delivery records for confirmed
// orders. Every insert runs in its own transaction: a unique violation aborts
// the Postgres transaction it happens in, so sharing one across the batch
// would let a single duplicate poison every insert after it. One failed order
// therefore does not abort the scan; the failure is recorded and the
// remaining orders are still processed. Duplicate links (another writer
// created the delivery between scan and insert) are skipped silently, which
// is what makes the whole operation idempotent.
type SyncConfirmedOrdersCommandHandler struct {
	uowFactory UoWFactory
}

// NewSyncConfirmedOrdersCommandHandler creates a handler for the backfill scan.
// Requires a UoWFactory for coordinating order reads with delivery writes.
func NewSyncConfirmedOrdersCommandHandler(uowFactory UoWFactory) SyncConfirmedOrdersCommandHandler {
	return SyncConfirmedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the backfill command.
// Returns the joined per-order failures, if any; a non-nil error still means
// every processable order got its delivery record.
func (h SyncConfirmedOrdersCommandHandler) Handle(ctx context.Context, cmd SyncConfirmedOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// The scan itself needs no transaction; without Begin the repository
	// reads from the main connection.
	pending, err := h.uowFactory.Create().OrderRepository().GetConfirmedWithoutDelivery(ctx)
	if err != nil {
		return err
	}

	var failures []error
	for _, confirmed := range pending {
		err := h.backfillOrder(ctx, confirmed)
		if errors.Is(err, delivery.ErrDuplicateDelivery) {
			continue
		}
		if err != nil {
			failures = append(failures, fmt.Errorf("order %s: %w", confirmed.ID(), err))
		}
	}

	return errors.Join(failures...)
}

// backfillOrder creates the delivery record for one confirmed order inside
// its own transaction.
func (h SyncConfirmedOrdersCommandHandler) backfillOrder(ctx context.Context, confirmed *order.Order) error {
	aggregate, err := delivery.NewDelivery(
		kernel.NewUUID(),
		confirmed.ID(),
		confirmed.DeliveryAddress(),
		confirmed.ContactPhone(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.DeliveryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
