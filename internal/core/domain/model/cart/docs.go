// Package cart models a customer's shopping cart between "add to cart" and checkout.
//
// Cart lines carry a price/title/image snapshot taken from the catalog when the
// line was first added. The cart is never re-priced on read; checkout is the
// single point where totals become authoritative.
package cart
