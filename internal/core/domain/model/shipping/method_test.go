package shipping_test

import (
	"encoding/json"
	"testing"

	"ootdverse/internal/core/domain/model/shipping"
	"ootdverse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	for _, key := range []string{"ghn", "ghtk", "viettel_post", "self_delivery", "meetup"} {
		m, err := shipping.ParseMethod(key)
		require.NoError(t, err)
		assert.Equal(t, key, m.String())
	}

	_, err := shipping.ParseMethod("dhl")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMethod_Type(t *testing.T) {
	assert.Equal(t, shipping.TypePlatform, shipping.GHN.Type())
	assert.Equal(t, shipping.TypePlatform, shipping.ViettelPost.Type())
	assert.Equal(t, shipping.TypeSelf, shipping.SelfDelivery.Type())
	assert.Equal(t, shipping.TypeMeetup, shipping.Meetup.Type())
	assert.Equal(t, shipping.TypeUnknown, shipping.MethodUnknown.Type())
}

func TestPlatformCarriers_Order(t *testing.T) {
	carriers := shipping.PlatformCarriers()
	assert.Equal(t, []shipping.Method{shipping.GHN, shipping.GHTK, shipping.ViettelPost}, carriers)

	// callers cannot reorder the package level list
	carriers[0] = shipping.Meetup
	assert.Equal(t, shipping.GHN, shipping.PlatformCarriers()[0])
}

func TestMethodOption_JSON(t *testing.T) {
	t.Run("meetup has null eta", func(t *testing.T) {
		data, err := json.Marshal(shipping.NewMeetupOption())
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"id": "meetup",
			"name": "Gặp mặt trực tiếp",
			"fee": 0,
			"eta": null,
			"type": "meetup",
			"note": "Liên hệ với người bán để hẹn địa điểm"
		}`, string(data))
	})

	t.Run("self delivery round trips", func(t *testing.T) {
		opt, err := shipping.NewSelfDeliveryOption(15000, "Giao buổi tối sau 18h")
		require.NoError(t, err)

		data, err := json.Marshal(opt)
		require.NoError(t, err)

		var decoded shipping.MethodOption
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, shipping.SelfDelivery, decoded.ID)
		assert.Equal(t, 15000, decoded.Fee)
		require.NotNil(t, decoded.ETA)
		assert.Equal(t, 1, decoded.ETA.MinDays())
		assert.Equal(t, 3, decoded.ETA.MaxDays())
		assert.Equal(t, "Giao buổi tối sau 18h", decoded.Note)
	})

	t.Run("negative self delivery fee", func(t *testing.T) {
		_, err := shipping.NewSelfDeliveryOption(-1, "")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}
