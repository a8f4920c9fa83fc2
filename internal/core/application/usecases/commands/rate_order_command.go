package commands

import (
	"errors"
	"time"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand leaves a rating for the other party of a completed order.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actorID kernel.UUID
	rating  order.Rating

	guard guard.ConstructorGuard
}

func NewRateOrderCommand(orderID, actorID kernel.UUID, score int, review string) (RateOrderCommand, error) {
	rating, ratingErr := order.NewRating(score, review, time.Now().UTC())
	if err := errors.Join(orderID.Validate(), actorID.Validate(), ratingErr); err != nil {
		return RateOrderCommand{}, err
	}

	return RateOrderCommand{
		orderID: orderID,
		actorID: actorID,
		rating:  rating,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

func (c RateOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c RateOrderCommand) ActorID() kernel.UUID { return c.actorID }
func (c RateOrderCommand) Rating() order.Rating { return c.rating }
