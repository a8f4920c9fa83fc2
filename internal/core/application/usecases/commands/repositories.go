// Package commands holds the write side: every handler validates its command,
// opens a unit of work, changes aggregates and commits.
package commands

import (
	"context"

	"ootdverse/internal/core/ports"
)

// Handlers depend on the narrowest unit of work they need, so tests only mock
// the repositories a command touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ListingRepoFactory interface {
		ListingRepository() ports.ListingRepository
	}

	AddressRepoFactory interface {
		AddressRepository() ports.AddressRepository
	}

	// OrderUoW is enough for payment results and ratings, which never
	// touch the listing.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW covers order placement and every transition that reserves, sells or
	// releases the listing.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//		return err
	//	}
	//	defer uow.Rollback(ctx)
	//	...
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ListingRepoFactory
		AddressRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
