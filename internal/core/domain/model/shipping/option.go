package shipping

import "ootdverse/internal/pkg/errs"

// Display names and notes for the non-carrier options.
const (
	SelfDeliveryName = "Tự giao hàng"
	MeetupName       = "Gặp mặt trực tiếp"
	MeetupNote       = "Liên hệ với người bán để hẹn địa điểm"
)

// SelfDeliveryETA is the generic window offered for seller self delivery.
var SelfDeliveryETA = mustETA(1, 3)

// MethodOption is one selectable delivery option for a listing and buyer
// address. ETA is nil for meetups.
type MethodOption struct {
	ID   Method     `json:"id"`
	Name string     `json:"name"`
	Fee  int        `json:"fee"`
	ETA  *ETA       `json:"eta"`
	Type MethodType `json:"type"`
	Note string     `json:"note,omitempty"`
}

// NewCarrierOption builds an option from a carrier quote.
func NewCarrierOption(q Quote) MethodOption {
	eta := q.ETA
	return MethodOption{
		ID:   q.Method,
		Name: q.ProviderName,
		Fee:  q.Fee,
		ETA:  &eta,
		Type: TypePlatform,
	}
}

// NewSelfDeliveryOption builds the seller self delivery option with a fixed fee
// and the seller's shipping note, which may be empty.
func NewSelfDeliveryOption(fee int, note string) (MethodOption, error) {
	if fee < 0 {
		return MethodOption{}, errs.NewValueIsOutOfRangeError("fixedShippingFee", fee, 0, "unbounded")
	}

	eta := SelfDeliveryETA
	return MethodOption{
		ID:   SelfDelivery,
		Name: SelfDeliveryName,
		Fee:  fee,
		ETA:  &eta,
		Type: TypeSelf,
		Note: note,
	}, nil
}

// NewMeetupOption builds the free in-person meetup option.
func NewMeetupOption() MethodOption {
	return MethodOption{
		ID:   Meetup,
		Name: MeetupName,
		Fee:  0,
		Type: TypeMeetup,
		Note: MeetupNote,
	}
}
