// Package services provides domain services that coordinate business operations
// spanning more than one aggregate of the laundry system.
//
// The package includes:
//   - PaymentFinalizer: settles a delivered order on behalf of a staff member
package services
