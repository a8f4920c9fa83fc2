package order

import (
	"fmt"

	"ootdverse/internal/pkg/errs"
)

// Action is the key of a user-facing or system transition.
type Action string

const (
	NoAction Action = ""

	ActionPay             Action = "pay"
	ActionStartPreparing  Action = "start_preparing"
	ActionShipOrder       Action = "ship_order"
	ActionMarkDelivered   Action = "mark_delivered"
	ActionConfirmDelivery Action = "confirm_delivery"
	ActionCancel          Action = "cancel"

	// ActionConfirmPayment is only available to System.
	ActionConfirmPayment Action = "confirm_payment"
)

var knownActions = map[Action]struct{}{
	ActionPay:             {},
	ActionStartPreparing:  {},
	ActionShipOrder:       {},
	ActionMarkDelivered:   {},
	ActionConfirmDelivery: {},
	ActionCancel:          {},
	ActionConfirmPayment:  {},
}

// ParseAction validates an action key received from a client.
func ParseAction(key string) (Action, error) {
	a := Action(key)
	if _, ok := knownActions[a]; !ok {
		return NoAction, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a valid action", key))
	}
	return a, nil
}

func (a Action) String() string {
	return string(a)
}

// ActionDescriptor tells a client which action, if any, the role can take on
// an order right now.
type ActionDescriptor struct {
	CanAct                 bool   `json:"canAct"`
	ActionKey              Action `json:"actionKey,omitempty"`
	NextStatus             Status `json:"nextStatus,omitempty"`
	RequiresTrackingNumber bool   `json:"requiresTrackingNumber"`
	HumanDescription       string `json:"humanDescription"`
}
