package order

import (
	"errors"
	"strings"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"
)

// Delivery records how the parcel travels from the seller to the buyer.
type Delivery struct {
	method         shipping.Method
	providerName   string
	trackingNumber string
	eta            *shipping.ETA
	pickup         kernel.Address
	destination    kernel.Address
	note           string
}

// NewDelivery builds delivery details from the option the buyer selected.
// Meetups carry no ETA.
func NewDelivery(option shipping.MethodOption, pickup, destination kernel.Address, note string) (Delivery, error) {
	var eta *shipping.ETA
	if option.ETA != nil {
		e := *option.ETA
		eta = &e
	}
	return restoreDelivery(option.ID, option.Name, "", eta, pickup, destination, note)
}

func restoreDelivery(
	method shipping.Method,
	providerName, trackingNumber string,
	eta *shipping.ETA,
	pickup, destination kernel.Address,
	note string,
) (Delivery, error) {
	err := errors.Join(method.Validate(), pickup.Validate(), destination.Validate())
	if eta != nil {
		err = errors.Join(err, eta.Validate())
	}
	if method != shipping.Meetup && !destination.HasProvince() {
		err = errors.Join(err, errs.NewValueIsRequiredError("delivery province"))
	}
	if err != nil {
		return Delivery{}, err
	}

	return Delivery{
		method:         method,
		providerName:   strings.TrimSpace(providerName),
		trackingNumber: strings.TrimSpace(trackingNumber),
		eta:            eta,
		pickup:         pickup,
		destination:    destination,
		note:           strings.TrimSpace(note),
	}, nil
}

func (d Delivery) Method() shipping.Method     { return d.method }
func (d Delivery) ProviderName() string        { return d.providerName }
func (d Delivery) TrackingNumber() string      { return d.trackingNumber }
func (d Delivery) ETA() *shipping.ETA          { return d.eta }
func (d Delivery) Pickup() kernel.Address      { return d.pickup }
func (d Delivery) Destination() kernel.Address { return d.destination }
func (d Delivery) Note() string                { return d.note }
