// Package order implements the laundry Order aggregate and its lifecycle.
//
// An order is created Pending with one priced service line, is picked up
// (Processing), delivered, and completed when its payment transaction is
// recorded. Only a Pending order can be edited or cancelled:
//
//	Pending ──> Processing ──> Completed
//	   │
//	   └──────> Cancelled
//
// Cancelled orders are terminal and protected from deletion. Order IDs are
// shown to people as WSHY# codes (see ID.Code).
package order
