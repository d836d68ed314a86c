package commands

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrApproveDeliveredOrdersCommandIsNotConstructed = errors.New(
	"ApproveDeliveredOrdersCommand must be created via NewApproveDeliveredOrdersCommand constructor",
)

// ApproveDeliveredOrdersCommand represents the auto-approval sweep: delivered
// orders whose invoices sat unapproved past the grace period are completed.
// Run periodically by the invoice-approval job when auto-approval is enabled;
// manual approval through CompleteOrderCommand stays available regardless.
type ApproveDeliveredOrdersCommand struct { //nolint:recvcheck //using for validation
	gracePeriod time.Duration

	guard guard.ConstructorGuard
}

// NewApproveDeliveredOrdersCommand creates an auto-approval command for
// orders delivered longer than gracePeriod ago.
func NewApproveDeliveredOrdersCommand(gracePeriod time.Duration) (ApproveDeliveredOrdersCommand, error) {
	cmd := ApproveDeliveredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setGracePeriod(gracePeriod); err != nil {
		return ApproveDeliveredOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrApproveDeliveredOrdersCommandIsNotConstructed)
}

// GracePeriod returns how long an invoice may sit unapproved.
func (c ApproveDeliveredOrdersCommand) GracePeriod() time.Duration {
	return c.gracePeriod
}

func (c *ApproveDeliveredOrdersCommand) setGracePeriod(gracePeriod time.Duration) error {
	if gracePeriod <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("grace period",
			fmt.Errorf("%s is not greater than 0", gracePeriod))
	}

	c.gracePeriod = gracePeriod
	return nil
}
