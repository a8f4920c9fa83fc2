// Package listing models the part of a marketplace listing that ordering and
// shipping depend on: price, parcel weight, ship-from address, shipping
// configuration and the availability status.
//
// A listing moves active -> pending when a buyer places an order, back to
// active when that order is cancelled, and to sold when the order completes.
package listing
