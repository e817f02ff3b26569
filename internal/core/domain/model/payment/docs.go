// Package payment holds the payment gateway's inbound vocabulary: webhook
// signature verification and the events the marketplace reacts to.
package payment
