package listing_test

import (
	"testing"

	"ootdverse/internal/core/domain/model/kernel"
	"ootdverse/internal/core/domain/model/listing"
	"ootdverse/internal/core/domain/model/shipping"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestListing(t *testing.T) *listing.Listing {
	t.Helper()

	cfg, err := shipping.NewConfig(true, true, 15000, nil)
	require.NoError(t, err)

	l, err := listing.NewListing(
		kernel.NewUUID(), kernel.NewUUID(),
		"Áo khoác denim", 350000, 800,
		kernel.NewAddress("Hà Nội", "Cầu Giấy", "Dịch Vọng", "12 Trần Thái Tông"),
		cfg,
	)
	require.NoError(t, err)
	return l
}

func TestNewListing(t *testing.T) {
	l := newTestListing(t)

	require.NoError(t, l.Validate())
	assert.Equal(t, listing.Active, l.Status())
	assert.Equal(t, 350000, l.Price())
	assert.Equal(t, "Hà Nội", l.ShipFrom().Province())
}

func TestNewListing_Invalid(t *testing.T) {
	cfg, err := shipping.NewConfig(true, false, 0, nil)
	require.NoError(t, err)

	l, err := listing.NewListing(kernel.UUID{}, kernel.NewUUID(), "  ", 0, -1, kernel.Address{}, cfg)

	require.Error(t, err)
	assert.Nil(t, l)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "price")
	assert.Contains(t, err.Error(), "weightGrams")
}

func TestListing_Lifecycle(t *testing.T) {
	l := newTestListing(t)

	require.NoError(t, l.Reserve())
	assert.Equal(t, listing.Pending, l.Status())

	// a second buyer cannot take a pending listing
	require.ErrorIs(t, l.Reserve(), listing.ErrListingIsNotAvailable)

	l.Release()
	assert.Equal(t, listing.Active, l.Status())

	require.NoError(t, l.Reserve())
	l.MarkSold()
	assert.Equal(t, listing.Sold, l.Status())

	l.Release()
	assert.Equal(t, listing.Sold, l.Status())
}

func TestListing_StoredStatus(t *testing.T) {
	l := newTestListing(t)
	require.NoError(t, l.Reserve())

	assert.Equal(t, listing.Active, l.StoredStatus())
	assert.Equal(t, listing.Pending, l.Status())

	l.MarkStored()
	assert.Equal(t, listing.Pending, l.StoredStatus())
}

func TestListing_ZeroValue(t *testing.T) {
	var l *listing.Listing
	require.ErrorIs(t, l.Validate(), listing.ErrListingIsNotConstructed)
}
