// Package account provides the User aggregate and the Role claim used to gate
// every lifecycle operation. The platform itself never authenticates anyone:
// an external identity collaborator supplies a caller's user id and role per
// request, and this package only models the profile registry those claims
// refer to.
//
// Key business rules:
//   - Users must have a valid unique identifier, email, name, and role
//   - Role is one of donor, recipient, driver, or admin and never changes
//   - Donors post donations, recipients claim them, drivers fulfill orders,
//     admins get unfiltered views
package account
