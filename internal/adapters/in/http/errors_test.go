package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"ootdverse/internal/core/application/usecases/commands"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/order"
	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"
	"ootdverse/internal/pkg/session"

	"github.com/stretchr/testify/assert"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"missing tracking number", order.ErrMissingTrackingNumber, http.StatusUnprocessableEntity},
		{"no session", session.ErrNoSession, http.StatusUnauthorized},
		{"outsider", order.ErrNotParticipant, http.StatusForbidden},
		{"not found", errs.NewObjectNotFoundError("order", "1"), http.StatusNotFound},
		{"action not available", fmt.Errorf("%w: ship_order", order.ErrActionNotAvailable), http.StatusConflict},
		{"pay directly", order.ErrPaymentIsExternal, http.StatusConflict},
		{"already rated", order.ErrAlreadyRated, http.StatusConflict},
		{"listing sold", listing.ErrListingIsNotAvailable, http.StatusConflict},
		{"region", commands.ErrCannotShipToAddress, http.StatusConflict},
		{"concurrent update", errs.NewVersionIsInvalidError("version", errors.New("stale")), http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("action"), http.StatusBadRequest},
		{"required value", errs.NewValueIsRequiredError("province"), http.StatusBadRequest},
		{"joined validation", errors.Join(errs.NewValueIsOutOfRangeError("rating", 9, 1, 5)), http.StatusBadRequest},
		{"shipping parameters", shipping.ErrInvalidShippingParameters, http.StatusBadRequest},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFor(tt.err))
		})
	}
}
