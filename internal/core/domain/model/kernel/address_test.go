package kernel_test

import (
	"testing"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should trim parts", func(t *testing.T) {
		a := kernel.NewAddress("  Hà Nội ", "Cầu Giấy", " Dịch Vọng", "144 Xuân Thủy ")

		require.NoError(t, a.Validate())
		assert.Equal(t, "Hà Nội", a.Province())
		assert.Equal(t, "Cầu Giấy", a.District())
		assert.Equal(t, "Dịch Vọng", a.Ward())
		assert.Equal(t, "144 Xuân Thủy", a.Street())
		assert.True(t, a.HasProvince())
		assert.Nil(t, a.Coordinates())
	})

	t.Run("should allow a blank province", func(t *testing.T) {
		a := kernel.NewAddress("   ", "", "", "")

		require.NoError(t, a.Validate())
		assert.False(t, a.HasProvince())
	})

	t.Run("with helpers return copies", func(t *testing.T) {
		base := kernel.NewAddress("Hồ Chí Minh", "Quận 1", "Bến Nghé", "1 Lê Duẩn")
		coords, err := kernel.NewCoordinates(10.78, 106.70)
		require.NoError(t, err)

		withRecipient := base.WithRecipient(" Trần B ", "0900000000").WithCoordinates(coords)

		assert.Empty(t, base.FullName())
		assert.Nil(t, base.Coordinates())
		assert.Equal(t, "Trần B", withRecipient.FullName())
		assert.Equal(t, "0900000000", withRecipient.Phone())
		require.NotNil(t, withRecipient.Coordinates())
		assert.InDelta(t, 10.78, withRecipient.Coordinates().Lat(), 1e-9)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var a kernel.Address

		require.Error(t, a.Validate())
	})
}

func TestNewCoordinates(t *testing.T) {
	t.Run("should reject out of range values", func(t *testing.T) {
		testCases := []struct {
			name     string
			lat, lng float64
		}{
			{"lat too small", -91, 0},
			{"lat too big", 91, 0},
			{"lng too small", 0, -181},
			{"lng too big", 0, 181},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewCoordinates(tc.lat, tc.lng)

				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("should accept the bounds", func(t *testing.T) {
		_, err := kernel.NewCoordinates(-90, 180)

		require.NoError(t, err)
	})
}

func TestCoordinates_DistanceKm(t *testing.T) {
	hanoi, _ := kernel.NewCoordinates(21.0285, 105.8542)
	saigon, _ := kernel.NewCoordinates(10.8231, 106.6297)

	t.Run("should compute haversine distance", func(t *testing.T) {
		km, err := hanoi.DistanceKm(saigon)

		require.NoError(t, err)
		assert.InDelta(t, 1137, km, 10)
	})

	t.Run("should be symmetric and zero on itself", func(t *testing.T) {
		ab, _ := hanoi.DistanceKm(saigon)
		ba, _ := saigon.DistanceKm(hanoi)
		self, _ := hanoi.DistanceKm(hanoi)

		assert.InDelta(t, ab, ba, 1e-9)
		assert.InDelta(t, 0, self, 1e-9)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var zero kernel.Coordinates

		_, err := hanoi.DistanceKm(zero)

		require.ErrorIs(t, err, kernel.ErrCoordinatesIsNotConstructed)
	})
}
