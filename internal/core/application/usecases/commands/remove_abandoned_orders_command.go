package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRemoveAbandonedOrdersCommandIsNotConstructed = errors.New(
	"RemoveAbandonedOrdersCommand must be created via NewRemoveAbandonedOrdersCommand constructor",
)

// RemoveAbandonedOrdersCommand represents the cleanup of checkout leftovers:
// orders still awaiting payment past the abandonment timeout are removed.
// Run periodically by the abandoned-order job.
type RemoveAbandonedOrdersCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemoveAbandonedOrdersCommand creates a cleanup command for orders that
// stayed in awaiting-payment longer than olderThan.
func NewRemoveAbandonedOrdersCommand(olderThan time.Duration) (RemoveAbandonedOrdersCommand, error) {
	cmd := RemoveAbandonedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOlderThan(olderThan); err != nil {
		return RemoveAbandonedOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAbandonedOrdersCommandIsNotConstructed)
}

// OlderThan returns the abandonment timeout.
func (c RemoveAbandonedOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *RemoveAbandonedOrdersCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("older than",
			fmt.Errorf("%s is not greater than 0", olderThan))
	}

	c.olderThan = olderThan
	return nil
}
