// Package order provides the Order aggregate of the marketplace: the durable record
// created at checkout and moved through fulfillment by shop owners and customers.
//
// The package includes:
//   - Order: the aggregate root holding the item/profile/address snapshots, the
//     server-computed pricing, the payment state and the fulfillment status
//   - Status: a state machine backed by a declarative transition table
//   - Pricing, DeliveryQuote, Discount: immutable pricing results
//
// Key business rules:
//   - Only transitions present in the table are permitted; repeating the
//     current status is rejected
//   - Stock is deducted at most once (on accept) and restored at most once
//     (on cancel); the shop whose items were deducted is remembered
//   - Payment status is independent of fulfillment status
//   - Orders can only be deleted by their customer while pending
package order
