// Package donation provides the Donation aggregate and its status state
// machine. A donation is a surplus-food offer posted by a donor; its status is
// never set directly by a caller, only derived from the progress of the single
// order that may claim it.
//
// Key business rules:
//   - Donations must have a donor, a food type, a quantity, an expiry date,
//     and a pickup location
//   - Status follows the strictly linear path
//     available -> claimed -> picked_up -> delivered, no skipping, no reverse
//   - A delivered donation is immutable
//   - Only the fulfillment engine transitions a donation, always as a side
//     effect of an order transition
package donation
