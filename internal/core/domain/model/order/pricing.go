package order

import (
	"errors"
	"fmt"
	"math"

	"ootdverse/internal/pkg/errs"
)

// PlatformFeeRate is the marketplace commission charged on the item price.
const PlatformFeeRate = 0.05

// Pricing is the money breakdown of an order in VND.
// Total = item price + shipping fee + platform fee.
type Pricing struct {
	itemPrice   int
	shippingFee int
	platformFee int
	total       int
}

// NewPricing derives the platform fee and total from the item price and the
// selected shipping fee.
//
// Example:
//
//	p, _ := order.NewPricing(350000, 31000)
//	fmt.Println(p.PlatformFee(), p.Total()) // 17500 398500
func NewPricing(itemPrice, shippingFee int) (Pricing, error) {
	platformFee := int(math.Round(float64(itemPrice) * PlatformFeeRate))
	return restorePricing(itemPrice, shippingFee, platformFee, itemPrice+shippingFee+platformFee)
}

func restorePricing(itemPrice, shippingFee, platformFee, total int) (Pricing, error) {
	var err error
	if itemPrice <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"itemPrice", fmt.Errorf("%d is not greater than 0", itemPrice)))
	}
	if shippingFee < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"shippingFee", fmt.Errorf("%d is negative", shippingFee)))
	}
	if platformFee < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"platformFee", fmt.Errorf("%d is negative", platformFee)))
	}
	if total != itemPrice+shippingFee+platformFee {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"total", fmt.Errorf("%d does not add up", total)))
	}
	if err != nil {
		return Pricing{}, err
	}

	return Pricing{
		itemPrice:   itemPrice,
		shippingFee: shippingFee,
		platformFee: platformFee,
		total:       total,
	}, nil
}

func (p Pricing) ItemPrice() int   { return p.itemPrice }
func (p Pricing) ShippingFee() int { return p.shippingFee }
func (p Pricing) PlatformFee() int { return p.platformFee }
func (p Pricing) Total() int       { return p.total }
