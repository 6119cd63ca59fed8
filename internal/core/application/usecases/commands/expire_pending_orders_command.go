package commands

import (
	"errors"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels orders that stayed PENDING longer than ttl.
// It is issued periodically by jobs.ExpirePendingOrdersJob.
type ExpirePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand requires a positive TTL.
func NewExpirePendingOrdersCommand(ttl time.Duration) (ExpirePendingOrdersCommand, error) {
	cmd := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
	if err := cmd.setTTL(ttl); err != nil {
		return ExpirePendingOrdersCommand{}, err
	}
	return cmd, nil
}

// Validate reports whether the command was built by NewExpirePendingOrdersCommand.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

// TTL returns how long an order may stay pending.
func (c ExpirePendingOrdersCommand) TTL() time.Duration {
	return c.ttl
}

func (c *ExpirePendingOrdersCommand) setTTL(ttl time.Duration) error {
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, time.Nanosecond, "unbounded")
	}
	c.ttl = ttl
	return nil
}
