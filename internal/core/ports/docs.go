// Package ports defines the contracts between the marketplace core and its
// infrastructure: transactional repositories, read-only lookups of data owned
// by other services (catalog, profiles, shops), and outbound integrations
// (event publishing, webhook de-duplication, payment gateway).
package ports
