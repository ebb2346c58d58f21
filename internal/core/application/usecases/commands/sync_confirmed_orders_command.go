package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrSyncConfirmedOrdersCommandIsNotConstructed = errors.New(
	"SyncConfirmedOrdersCommand must be created via NewSyncConfirmedOrdersCommand constructor",
)

// SyncConfirmedOrdersCommand triggers one scan of confirmed orders that have
// no delivery record yet. Running it repeatedly is safe: existing records are
// never touched and the per-order unique link prevents duplicates.
//
// Example:
//
//	cmd := NewSyncConfirmedOrdersCommand()
//	handler := NewSyncConfirmedOrdersCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("some orders could not be backfilled: %v", err)
//	}
type SyncConfirmedOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncConfirmedOrdersCommand creates a new command to trigger the backfill scan.
func NewSyncConfirmedOrdersCommand() SyncConfirmedOrdersCommand {
	return SyncConfirmedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncConfirmedOrdersCommandIsNotConstructed if validation fails.
func (c *SyncConfirmedOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrSyncConfirmedOrdersCommandIsNotConstructed,
	)
}
