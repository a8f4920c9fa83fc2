package commands

import (
	"errors"
	"fmt"
	"time"

	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/guard"
)

var ErrExpireUnpaidOrdersCommandIsNotConstructed = errors.New(
	"ExpireUnpaidOrdersCommand must be created via NewExpireUnpaidOrdersCommand constructor",
)

// UnpaidOrderCancelReason is recorded on orders cancelled by expiry.
const UnpaidOrderCancelReason = "payment not received in time"

// ExpireUnpaidOrdersCommand cancels up to batchSize orders that have waited for
// payment longer than ttl as of now.
type ExpireUnpaidOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff    time.Time
	now       time.Time
	batchSize int

	guard guard.ConstructorGuard
}

func NewExpireUnpaidOrdersCommand(now time.Time, ttl time.Duration, batchSize int) (ExpireUnpaidOrdersCommand, error) {
	var err error
	if ttl <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("ttl", fmt.Errorf("%s is not positive", ttl)))
	}
	if batchSize <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"batchSize", fmt.Errorf("%d is not greater than 0", batchSize)))
	}
	if err != nil {
		return ExpireUnpaidOrdersCommand{}, err
	}

	return ExpireUnpaidOrdersCommand{
		cutoff:    now.Add(-ttl),
		now:       now,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpireUnpaidOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireUnpaidOrdersCommandIsNotConstructed)
}

func (c ExpireUnpaidOrdersCommand) Cutoff() time.Time { return c.cutoff }
func (c ExpireUnpaidOrdersCommand) Now() time.Time    { return c.now }
func (c ExpireUnpaidOrdersCommand) BatchSize() int    { return c.batchSize }
