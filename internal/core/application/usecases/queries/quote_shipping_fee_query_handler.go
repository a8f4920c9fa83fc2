package queries

import (
	"context"

	"ootdverse/internal/core/domain/model/shipping"
)

type QuoteShippingFeeQueryHandler struct {
	calculator FeeCalculator
}

func NewQuoteShippingFeeQueryHandler(calculator FeeCalculator) QuoteShippingFeeQueryHandler {
	return QuoteShippingFeeQueryHandler{calculator: calculator}
}

func (h QuoteShippingFeeQueryHandler) Handle(_ context.Context, query QuoteShippingFeeQuery) (shipping.Quote, error) {
	if err := query.Validate(); err != nil {
		return shipping.Quote{}, err
	}
	return h.calculator.CalculateFee(query.Method(), query.From(), query.To(), query.WeightGrams())
}
