// Package services provides the pricing and numbering domain services of the
// marketplace. They hold no state of their own beyond configuration and are
// shared by the checkout commands and the checkout summary query.
//
// The package includes:
//   - DeliveryFeeCalculator: tiered delivery fee rules over distance and subtotal
//   - DiscountEngine: first-order and auto-applied offers
//   - CheckoutPricer: distance + fee + discount combined into order.Pricing
//   - OrderNumberGenerator: human-readable, process-unique order numbers
package services
