// Package order provides the Order aggregate and its status state machine.
// An order is a recipient's request against exactly one donation, fulfilled by
// a driver who self-assigns and advances it to delivery.
//
// The package includes:
//   - Order: The aggregate root binding a donation to a recipient and,
//     once assigned, to a driver
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Order status follows pending -> assigned -> in_transit -> delivered,
//     strictly linear and forward-only
//   - The donation reference and recipient are immutable after creation
//   - A driver is set exactly once, at assignment, and never changes
//   - The pickup location is a snapshot of the donation's location taken at
//     creation time, not a live reference
package order
