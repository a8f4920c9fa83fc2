package queries

import (
	"errors"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/guard"
)

var ErrQuoteShippingFeeQueryIsNotConstructed = errors.New(
	"QuoteShippingFeeQuery must be created via NewQuoteShippingFeeQuery constructor",
)

// QuoteShippingFeeQuery prices one platform carrier for a route and weight.
// Route and weight checks belong to the fee calculator, which reports them as
// shipping.ErrInvalidShippingParameters.
type QuoteShippingFeeQuery struct {
	method      shipping.Method
	from        kernel.Address
	to          kernel.Address
	weightGrams int

	guard guard.ConstructorGuard
}

func NewQuoteShippingFeeQuery(
	method shipping.Method,
	from, to kernel.Address,
	weightGrams int,
) (QuoteShippingFeeQuery, error) {
	if err := method.Validate(); err != nil {
		return QuoteShippingFeeQuery{}, err
	}
	return QuoteShippingFeeQuery{
		method:      method,
		from:        from,
		to:          to,
		weightGrams: weightGrams,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteShippingFeeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteShippingFeeQueryIsNotConstructed)
}

func (q QuoteShippingFeeQuery) Method() shipping.Method { return q.method }
func (q QuoteShippingFeeQuery) From() kernel.Address    { return q.from }
func (q QuoteShippingFeeQuery) To() kernel.Address      { return q.to }
func (q QuoteShippingFeeQuery) WeightGrams() int        { return q.weightGrams }
