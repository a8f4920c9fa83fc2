package ports

import (
	"context"
)

type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one transaction across the order, listing and address stores.
// Repositories handed out after Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit commits and then publishes the status changes of every order
	// saved through OrderRepository. Publishing failures do not undo the
	// commit.
	Commit(ctx context.Context) error

	// Rollback is safe to defer: after a successful Commit it does nothing.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ListingRepository() ListingRepository
	AddressRepository() AddressRepository
}
