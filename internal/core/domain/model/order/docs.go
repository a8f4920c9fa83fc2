// Package order provides the Order aggregate of the marketplace together with
// the state machine that governs its fulfillment.
//
// The package includes:
//   - Order: the aggregate root holding parties, pricing, delivery, payment,
//     status history, cancellation and ratings
//   - Status: the seven fulfillment stages from pending_payment to completed
//   - StateMachine: the per-role transition table and cancellation rules
//   - ActionDescriptor: what a buyer or seller can do next, ready for JSON
//
// Key business rules:
//   - Orders start in pending_payment; payment confirmation moves them to paid
//   - The seller prepares, ships (with a tracking number) and marks delivery
//   - Only the buyer can complete an order, and only after delivery
//   - Buyer, seller or the platform may cancel until the order ships
//   - Completed and cancelled are terminal
//
// Every transition goes through StateMachine.Next, and the aggregate records a
// StatusChanged event for each one.
package order
