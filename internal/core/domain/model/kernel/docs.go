// Package kernel provides the shared primitives of the marketplace domain model.
//
// The package includes:
//   - UUID: identifier value object used for users, shop owners, products and orders
//   - GeoPoint: a validated latitude/longitude pair and the haversine distance between two points
//   - Actor: the authenticated party driving a command, with its role
//
// These primitives are immutable and safe for concurrent use.
package kernel
