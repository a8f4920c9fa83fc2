package order

import (
	"time"

	"ootdverse/internal/core/domain/model/kernel"
)

// StatusChanged is recorded every time an order moves to a new status. The unit
// of work publishes these after a successful commit.
type StatusChanged struct {
	OrderID        kernel.UUID
	OrderCode      string
	BuyerID        kernel.UUID
	SellerID       kernel.UUID
	ListingID      kernel.UUID
	From           Status
	To             Status
	Action         Action
	Role           Role
	TrackingNumber string
	OccurredAt     time.Time
}
