package order_test

import (
	"encoding/json"
	"testing"

	"ootdverse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateMachine_AvailableAction(t *testing.T) {
	sm := order.StateMachine{}

	tests := []struct {
		name     string
		status   order.Status
		role     order.Role
		canAct   bool
		action   order.Action
		next     order.Status
		tracking bool
	}{
		{"buyer pays pending order", order.PendingPayment, order.Buyer, true, order.ActionPay, order.Unknown, false},
		{"seller waits for payment", order.PendingPayment, order.Seller, false, order.NoAction, order.Unknown, false},
		{"seller starts preparing", order.Paid, order.Seller, true, order.ActionStartPreparing, order.Preparing, false},
		{"buyer waits while paid", order.Paid, order.Buyer, false, order.NoAction, order.Unknown, false},
		{"seller ships", order.Preparing, order.Seller, true, order.ActionShipOrder, order.Shipping, true},
		{"seller marks delivered", order.Shipping, order.Seller, true, order.ActionMarkDelivered, order.Delivered, false},
		{"buyer confirms delivery", order.Delivered, order.Buyer, true, order.ActionConfirmDelivery, order.Completed, false},
		{"seller waits for confirmation", order.Delivered, order.Seller, false, order.NoAction, order.Unknown, false},
		{"buyer on completed", order.Completed, order.Buyer, false, order.NoAction, order.Unknown, false},
		{"seller on cancelled", order.Cancelled, order.Seller, false, order.NoAction, order.Unknown, false},
		{"system confirms payment", order.PendingPayment, order.System, true, order.ActionConfirmPayment, order.Paid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := sm.AvailableAction(tt.status, tt.role)

			assert.Equal(t, tt.canAct, d.CanAct)
			assert.Equal(t, tt.action, d.ActionKey)
			assert.Equal(t, tt.next, d.NextStatus)
			assert.Equal(t, tt.tracking, d.RequiresTrackingNumber)
			assert.NotEmpty(t, d.HumanDescription)
		})
	}
}

func TestStateMachine_AvailableAction_UnknownPairs(t *testing.T) {
	sm := order.StateMachine{}

	for _, role := range []order.Role{order.RoleUnknown, order.Role(99)} {
		for _, status := range append(order.AllStatuses(), order.Unknown, order.Status(42)) {
			assert.NotPanics(t, func() {
				d := sm.AvailableAction(status, role)
				assert.False(t, d.CanAct)
				assert.Equal(t, "No action available", d.HumanDescription)
			})
		}
	}

	d := sm.AvailableAction(order.Shipping, order.System)
	assert.False(t, d.CanAct)
}

func TestStateMachine_CanCancel(t *testing.T) {
	sm := order.StateMachine{}
	cancellable := map[order.Status]bool{
		order.PendingPayment: true,
		order.Paid:           true,
		order.Preparing:      true,
	}

	for _, status := range order.AllStatuses() {
		for _, role := range []order.Role{order.Buyer, order.Seller, order.System} {
			assert.Equal(t, cancellable[status], sm.CanCancel(status, role), "%s/%s", status, role)
		}
	}

	assert.False(t, sm.CanCancel(order.Paid, order.RoleUnknown))
}

func TestStateMachine_Next(t *testing.T) {
	sm := order.StateMachine{}

	t.Run("ship order needs tracking number", func(t *testing.T) {
		for _, tracking := range []string{"", "   ", "\t\n"} {
			next, err := sm.Next(order.Preparing, order.Seller, order.ActionShipOrder, tracking)
			require.ErrorIs(t, err, order.ErrMissingTrackingNumber)
			assert.NotEqual(t, order.Shipping, next)
		}

		next, err := sm.Next(order.Preparing, order.Seller, order.ActionShipOrder, " GHN123 ")
		require.NoError(t, err)
		assert.Equal(t, order.Shipping, next)
	})

	t.Run("wrong role", func(t *testing.T) {
		_, err := sm.Next(order.Preparing, order.Buyer, order.ActionShipOrder, "GHN123")
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
	})

	t.Run("action from another status", func(t *testing.T) {
		_, err := sm.Next(order.Paid, order.Seller, order.ActionMarkDelivered, "")
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
	})

	t.Run("pay has no direct transition", func(t *testing.T) {
		_, err := sm.Next(order.PendingPayment, order.Buyer, order.ActionPay, "")
		require.ErrorIs(t, err, order.ErrPaymentIsExternal)
	})

	t.Run("no action key", func(t *testing.T) {
		_, err := sm.Next(order.Paid, order.Buyer, order.NoAction, "")
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
	})

	t.Run("cancel before shipping only", func(t *testing.T) {
		next, err := sm.Next(order.Preparing, order.Buyer, order.ActionCancel, "")
		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)

		_, err = sm.Next(order.Shipping, order.Buyer, order.ActionCancel, "")
		require.ErrorIs(t, err, order.ErrActionNotAvailable)
	})
}

// Completed is only reachable through delivered + buyer confirm_delivery.
func TestStateMachine_CompletedOnlyFromDelivered(t *testing.T) {
	sm := order.StateMachine{}
	actions := []order.Action{
		order.ActionPay, order.ActionStartPreparing, order.ActionShipOrder, order.ActionMarkDelivered,
		order.ActionConfirmDelivery, order.ActionCancel, order.ActionConfirmPayment,
	}

	for _, status := range order.AllStatuses() {
		for _, role := range []order.Role{order.Buyer, order.Seller, order.System} {
			for _, action := range actions {
				next, err := sm.Next(status, role, action, "TRACK-1")
				if err != nil || next != order.Completed {
					continue
				}
				assert.Equal(t, order.Delivered, status)
				assert.Equal(t, order.Buyer, role)
				assert.Equal(t, order.ActionConfirmDelivery, action)
			}
		}
	}
}

func TestStateMachine_TerminalStatuses(t *testing.T) {
	sm := order.StateMachine{}

	for _, status := range []order.Status{order.Completed, order.Cancelled} {
		assert.True(t, status.IsTerminal())
		for _, role := range []order.Role{order.Buyer, order.Seller, order.System} {
			assert.False(t, sm.AvailableAction(status, role).CanAct)
			assert.False(t, sm.CanCancel(status, role))
		}
	}
}

func TestActionDescriptor_JSONRoundTrip(t *testing.T) {
	sm := order.StateMachine{}

	for _, status := range order.AllStatuses() {
		for _, role := range []order.Role{order.Buyer, order.Seller} {
			d := sm.AvailableAction(status, role)

			data, err := json.Marshal(d)
			require.NoError(t, err)

			var decoded order.ActionDescriptor
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, d, decoded)
		}
	}
}

func TestActionDescriptor_JSONShape(t *testing.T) {
	d := order.StateMachine{}.AvailableAction(order.Preparing, order.Seller)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"canAct": true,
		"actionKey": "ship_order",
		"nextStatus": "shipping",
		"requiresTrackingNumber": true,
		"humanDescription": "Hand the parcel to the carrier and enter the tracking number"
	}`, string(data))

	idle, err := json.Marshal(order.StateMachine{}.AvailableAction(order.Completed, order.Buyer))
	require.NoError(t, err)
	assert.NotContains(t, string(idle), "nextStatus")
	assert.NotContains(t, string(idle), "actionKey")
}
